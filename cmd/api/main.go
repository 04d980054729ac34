// Command api is the AUF Analytics API server.
//
// Usage:
//
//	auf-api
//	API_PORT=8080 STORE_DRIVER=postgres DATABASE_URL=postgres://... auf-api

// @title AUF Analytics API
// @version 1.0.0
// @description Uruguayan league analytics: standings, scorers, insights, matchup advice and free-text questions over a season dataset.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name AUF Analytics
// @license.name MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/auf-analytics/internal/api"
	"github.com/albapepper/auf-analytics/internal/config"
	"github.com/albapepper/auf-analytics/internal/query"
	"github.com/albapepper/auf-analytics/internal/scheduler"
	"github.com/albapepper/auf-analytics/internal/seed"
	"github.com/albapepper/auf-analytics/internal/store"

	_ "github.com/albapepper/auf-analytics/docs" // swagger docs
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}

	rules, err := query.LoadRules(cfg.QueryRulesFile)
	if err != nil {
		logger.Error("Failed to load query rules", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Open store
	logger.Info("Opening store...", "driver", cfg.StoreDriver)
	st, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Seed on first start
	seedOpts := seed.ConfigOptions(cfg)
	empty, err := store.IsEmpty(ctx, st)
	if err != nil {
		logger.Error("Failed to inspect store", "error", err)
		os.Exit(1)
	}
	if empty {
		if _, err := seed.Reseed(ctx, st, seedOpts, logger); err != nil {
			logger.Error("Initial seed failed", "error", err)
			os.Exit(1)
		}
	}

	reseed := func(ctx context.Context) (seed.SeedResult, error) {
		return seed.Reseed(ctx, st, seedOpts, logger)
	}

	// Scheduled reloads
	schedCfg := scheduler.Config{
		Cron:     cfg.ReloadSchedule,
		Interval: cfg.ReloadInterval,
		Location: cfg.Location(),
	}
	if schedCfg.Enabled() {
		sch, err := scheduler.New(schedCfg, func(ctx context.Context) error {
			_, err := reseed(ctx)
			return err
		}, logger)
		if err != nil {
			logger.Error("Failed to configure scheduler", "error", err)
			os.Exit(1)
		}
		go sch.Run(ctx)
	} else {
		logger.Info("Scheduled reload disabled (no RELOAD_SCHEDULE or RELOAD_INTERVAL)")
	}

	// Create router
	router := api.NewRouter(st, rules, cfg, reseed, logger)

	// Create HTTP server
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting AUF Analytics API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
