// Command server runs the storefront recommendation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auroramart/internal/app"
	"auroramart/internal/config"
	"auroramart/internal/database"
	"auroramart/internal/middleware"
	"auroramart/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", slog.String("error", err.Error()))
		}
	}()

	components, err := app.Build(cfg, db.DB, logger, services.NewPrometheusMetrics())
	if err != nil {
		return err
	}

	status := components.ArtifactStatus()
	logger.Info("Model artifacts checked",
		slog.String("event_type", "artifacts_checked"),
		slog.Bool(app.ArtifactClassifier, status[app.ArtifactClassifier]),
		slog.Bool(app.ArtifactRules, status[app.ArtifactRules]),
		slog.Int("bridge_entries", components.Bridge.Len()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.StartCleanup(ctx)

	if cfg.Recommendation.PrecomputeEnabled {
		refresher := components.NewRefresher()
		go refresher.StartProcessing(ctx)
		logger.Info("Recommendation precompute enabled",
			slog.String("event_type", "precompute_enabled"),
			slog.Duration("interval", cfg.Recommendation.PrecomputeInterval),
			slog.Int("workers", cfg.Recommendation.PrecomputeWorkers),
		)
	}

	e := newServer(components, db.DB, limiter, prometheus.DefaultGatherer)
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			slog.String("event_type", "server_starting"),
			slog.String("addr", addr),
			slog.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", slog.String("event_type", "server_stopping"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
