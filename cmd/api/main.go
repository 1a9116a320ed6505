// Command api is the Fantasy Data API server.
//
// Usage:
//
//	fantasy-api
//	API_PORT=8080 fantasy-api

// @title Fantasy Data API
// @version 1.0.0
// @description Resilient NFL fantasy analytics API serving warehouse stats, player resolution, and Sleeper league data.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Gridiron Lab
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/gridironlab/fantasy-data/internal/api"
	"github.com/gridironlab/fantasy-data/internal/bundle"
	"github.com/gridironlab/fantasy-data/internal/config"
	"github.com/gridironlab/fantasy-data/internal/db"
	"github.com/gridironlab/fantasy-data/internal/resolve"
	"github.com/gridironlab/fantasy-data/internal/retry"
	"github.com/gridironlab/fantasy-data/internal/sleeper"

	_ "github.com/gridironlab/fantasy-data/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.IsProduction(),
	}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Player resolution: warehouse-backed store behind a TTL cache
	cache := resolve.NewCache(cfg.PlayerCacheTTL)
	resolver := resolve.NewResolver(resolve.NewPgStore(pool.Pool), cache, cfg.PlayerLookupBatchSize, logger)
	logger.Info("Player resolution cache initialized",
		"ttl", cfg.PlayerCacheTTL,
		"batch_size", cfg.PlayerLookupBatchSize)

	// Sleeper client with retrying transport
	policy := retry.Policy{
		MaxAttempts:  cfg.RetryMaxAttempts,
		InitialDelay: cfg.RetryInitialDelay,
		MaxDelay:     cfg.RetryMaxDelay,
		Multiplier:   cfg.RetryMultiplier,
		IsRetryable:  retry.Retryable,
		Logger:       logger,
	}
	sl := sleeper.NewClient(cfg.SleeperBaseURL, cfg.SleeperRequestsPerMinute, policy, logger)

	// Composite bundle assembly
	bundles := bundle.NewService(pool, resolver, sl, cfg.DeepDiveWorkers, logger)

	// Create router
	router := api.NewRouter(pool, cache, resolver, bundles, sl, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Fantasy Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
