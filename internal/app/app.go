// Package app initializes and holds the long-lived services shared across
// a run: the logger, configuration, and optional metrics listener.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/YuchiLiuS/newsaggregator/internal/config"
	"github.com/YuchiLiuS/newsaggregator/internal/logging"
	"github.com/YuchiLiuS/newsaggregator/internal/telemetry"
)

// App is a small dependency-injection container built once per process
// invocation and shared by every subcommand.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *telemetry.Server
}

// New builds an App from the given config file path (may be empty).
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Development: cfg.Logging.Development,
		Service:     "newsaggregator",
	})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	var metricsServer *telemetry.Server
	if cfg.Metrics.Enabled {
		metricsServer = telemetry.StartServer(cfg.Metrics.Addr)
		logger.Info("metrics listener started", zap.String("addr", cfg.Metrics.Addr))
	}

	return &App{cfg: cfg, logger: logger, metrics: metricsServer}, nil
}

// Config returns the loaded configuration.
func (a *App) Config() config.Config { return a.cfg }

// Logger returns the shared structured logger.
func (a *App) Logger() *zap.Logger { return a.logger }

// Close flushes the logger and stops the metrics listener, if any.
func (a *App) Close() {
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Stop(ctx); err != nil {
			a.logger.Warn("failed to stop metrics listener", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
