package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/hash"
	"github.com/Skotchmaster/shop_api/internal/httpserver"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/search"
	"github.com/Skotchmaster/shop_api/internal/service"
	"github.com/Skotchmaster/shop_api/internal/tokens"
	pkgdb "github.com/Skotchmaster/shop_api/pkg/db"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := pkgdb.Open(initCtx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db_init_error", "error", err)
		os.Exit(1)
	}
	if err := repo.Migrate(db); err != nil {
		logger.Error("db_migrate_error", "error", err)
		os.Exit(1)
	}
	store := repo.New(db)

	hasher, err := hash.New(cfg.PasswordHashing)
	if err != nil {
		logger.Error("hasher_init_error", "error", err)
		os.Exit(1)
	}
	if cfg.PasswordHashing == hash.ModePlain {
		logger.Warn("passwords are stored in plain text", "hint", "set PASSWORD_HASHING=bcrypt")
	}

	tokenSvc, err := tokens.NewService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		logger.Error("tokens_init_error", "error", err)
		os.Exit(1)
	}

	var publisher events.Publisher = events.Nop{}
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Error("kafka_init_error", "error", err)
			os.Exit(1)
		}
		publisher = producer
	} else {
		logger.Info("KAFKA_BROKERS not set, events disabled")
	}

	catalog := &service.CatalogService{Repo: store, Events: publisher}
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(initCtx, search.ClientConfig{
			URL:      cfg.ESURL,
			Username: cfg.ESUser,
			Password: cfg.ESPassword,
		})
		if err != nil {
			logger.Error("elasticsearch_init_error", "error", err)
			os.Exit(1)
		}
		catalog.Index = search.NewProductIndex(esClient, cfg.ESIndex)
	} else {
		logger.Info("ES_URL not set, searching the database")
	}
	cancel()

	e := httpserver.NewEcho(logger)
	httpserver.Register(e, &httpserver.Deps{
		DB:    db,
		Guard: &service.Guard{Tokens: tokenSvc, Users: store},
		Auth: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Users:  store,
			Tokens: tokenSvc,
			Hasher: hasher,
			Events: publisher,
		}},
		Catalog: &httpserver.CatalogHTTP{Svc: catalog},
		Cart:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: store, Events: publisher}},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db close error", "error", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
