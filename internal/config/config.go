package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/shop_api/internal/hash"
	"github.com/Skotchmaster/shop_api/internal/tokens"
	pkgconfig "github.com/Skotchmaster/shop_api/pkg/config"
	pkgdb "github.com/Skotchmaster/shop_api/pkg/db"
)

type Config struct {
	ServiceName string
	Port        int
	LogLevel    string

	DBDriver    string
	DatabaseURL string

	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	PasswordHashing string

	// KafkaBrokers empty disables event publishing.
	KafkaBrokers []string

	// ESURL empty disables the search index.
	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

// Load reads the environment, after applying .env from the working
// directory when one exists. Variables already set win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var req pkgconfig.Required
	cfg := &Config{
		ServiceName:     pkgconfig.EnvDefault("SERVICE_NAME", "shop-api"),
		LogLevel:        pkgconfig.EnvDefault("LOG_LEVEL", "info"),
		DBDriver:        pkgconfig.EnvDefault("DB_DRIVER", pkgdb.DriverPostgres),
		DatabaseURL:     req.String(os.Getenv("DATABASE_URL"), "DATABASE_URL"),
		JWTSecret:       []byte(req.String(os.Getenv("JWT_SECRET"), "JWT_SECRET")),
		PasswordHashing: pkgconfig.EnvDefault("PASSWORD_HASHING", hash.ModePlain),
		KafkaBrokers:    pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:           os.Getenv("ES_URL"),
		ESUser:          os.Getenv("ES_USER"),
		ESPassword:      os.Getenv("ES_PASSWORD"),
		ESIndex:         pkgconfig.EnvDefault("ES_INDEX", "products"),
	}
	if err := req.Err(); err != nil {
		return nil, err
	}

	var err error
	if cfg.Port, err = pkgconfig.EnvInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT: %d out of range", cfg.Port)
	}

	if cfg.AccessTokenTTL, err = pkgconfig.EnvDuration("ACCESS_TOKEN_TTL", tokens.DefaultTTL); err != nil {
		return nil, err
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, errors.New("ACCESS_TOKEN_TTL: must be positive")
	}

	switch cfg.DBDriver {
	case pkgdb.DriverPostgres, pkgdb.DriverSQLite:
	default:
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}

	switch cfg.PasswordHashing {
	case hash.ModePlain, hash.ModeBcrypt:
	default:
		return nil, fmt.Errorf("PASSWORD_HASHING: unknown mode %q", cfg.PasswordHashing)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
