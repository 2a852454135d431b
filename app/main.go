package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-service/internal/repositories"
	"inventory-service/internal/routes"
	"inventory-service/pkg/config"
	"inventory-service/pkg/eventbus"
	applogger "inventory-service/pkg/logger"
	"inventory-service/pkg/metrics"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Config first: it decides where the logger writes.
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails, then shuts the
// server down, drains event listeners and closes the snapshot backend.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	// 2. Persistence and the in-memory store.
	appMetrics := metrics.New()
	snapshots, err := repositories.OpenSnapshotRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open snapshot storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logger.Warn("failed to close snapshot storage", zap.Error(err))
		}
	}()
	store := repositories.NewInventoryStore(ctx, repositories.NewInstrumentedSnapshotRepository(snapshots, appMetrics), logger)

	// 3. HTTP server.
	e, err := routes.NewServer(cfg, appMetrics, logger)
	if err != nil {
		logger.Error("failed to build HTTP server", zap.Error(err))
		return err
	}
	bus := eventbus.New(logger)
	routes.InitRouter(e, routes.Dependencies{
		Store:   store,
		Bus:     bus,
		Metrics: appMetrics,
		Logger:  logger,
		Config:  cfg,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("address", cfg.Server.Address()),
			zap.String("storage", snapshots.Driver()),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			serverErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	bus.Wait()

	select {
	case err := <-serverErr:
		return err
	default:
		return nil
	}
}
