package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"SERVICE_NAME", "SERVER_PORT", "LOG_LEVEL", "DB_DRIVER", "DATABASE_URL", "JWT_SECRET",
	"ACCESS_TOKEN_TTL", "PASSWORD_HASHING", "KAFKA_BROKERS", "ES_URL", "ES_USER", "ES_PASSWORD", "ES_INDEX",
}

// cleanEnv unsets every variable Load reads and moves into an empty
// directory so no .env is picked up. The original values come back on
// cleanup.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shop-api", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []byte("s3cret"), cfg.JWTSecret)
	assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "plain", cfg.PasswordHashing)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.ESURL)
	assert.Equal(t, "products", cfg.ESIndex)
}

func TestLoad_Overrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("DATABASE_URL", "file:shop.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("PASSWORD_HASHING", "bcrypt")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("ES_URL", "http://es:9200")
	t.Setenv("ES_INDEX", "catalog")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "bcrypt", cfg.PasswordHashing)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "http://es:9200", cfg.ESURL)
	assert.Equal(t, "catalog", cfg.ESIndex)
}

func TestLoad_MissingRequired(t *testing.T) {
	cleanEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SERVER_PORT", "http"},
		{"SERVER_PORT", "70000"},
		{"ACCESS_TOKEN_TTL", "soon"},
		{"ACCESS_TOKEN_TTL", "0s"},
		{"DB_DRIVER", "mysql"},
		{"PASSWORD_HASHING", "md5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv("DATABASE_URL", "postgres://localhost/shop")
			t.Setenv("JWT_SECRET", "s3cret")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	cleanEnv(t)
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DATABASE_URL=postgres://dotenv/shop\nJWT_SECRET=from-file\nSERVER_PORT=7070\n"), 0o600))
	t.Setenv("SERVER_PORT", "6060")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://dotenv/shop", cfg.DatabaseURL)
	assert.Equal(t, []byte("from-file"), cfg.JWTSecret)
	assert.Equal(t, 6060, cfg.Port)
}
