package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/gateway"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/cache"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/handlers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"brand", cfg.Gateway.Brand,
		"test", cfg.Gateway.Test,
		"log_level", cfg.Logger.Level,
	)

	gw, err := gateway.FromConfig(cfg.Gateway, cfg.Client, gateway.WithLogger(logger))
	if err != nil {
		logger.Error("failed to build gateway", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	checks := map[string]handlers.HealthCheck{
		"platform": gw.Check,
	}

	var txRepo application.TransactionRepository
	if cfg.Database.Enabled {
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		txRepo = postgres.NewTransactionRepository(db)
		checks["postgres"] = db.Ping
	}

	var idempotency application.IdempotencyStore
	if cfg.Redis.Enabled {
		store := cache.NewRedisStore(cfg.Redis)
		if err := store.Ping(ctx); err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		idempotency = store
		checks["redis"] = store.Ping
	}

	paymentService := services.NewPaymentService(gw, txRepo, idempotency, logger)
	queryService := services.NewQueryService(txRepo)

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load API description", "error", err)
		os.Exit(1)
	}

	requestTimeout := cfg.RequestTimeout()

	h := handlers.NewHandlers(paymentService, queryService, checks, logger)
	handler, err := handlers.NewHTTPHandler(h, doc, requestTimeout, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: max(cfg.Server.WriteTimeout, requestTimeout+5*time.Second),
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
