package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"back-office/internal/app"
	"back-office/internal/config"
	"back-office/internal/infra/db"
	"back-office/internal/observability/logging"
	"back-office/internal/observability/tracing"

	_ "back-office/docs" // swagger docs
)

// @title           back-office API
// @version         1.0
// @description     Article management API of the back office.
// @description     Articles are created and read through JSON endpoints; admin pages render them as HTML.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

func main() {
	cfg := loadConfig()
	logger := initLogger(cfg)
	logger.Info("configuration loaded", slog.Any("config", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := initTracing(logger, cfg)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to stop tracer provider", slog.Any("error", err))
		}
	}()

	database := initDatabase(ctx, logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := run(ctx, logger, cfg, database); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig reads ./config for the environment named by APP__ENVIRONMENT.
// Logging is not configured yet, so failures go to the default logger.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.DefaultDirectory)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// initLogger builds the process logger from configuration and makes it the
// slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(os.Stdout, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}).With(slog.String("service", cfg.Application.Name))
	slog.SetDefault(logger)
	return logger
}

func initTracing(logger *slog.Logger, cfg *config.Config) func(context.Context) error {
	shutdown, err := tracing.InitProvider(tracing.Options{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Application.Version,
		Environment:    cfg.Application.Environment,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	return shutdown
}

// initDatabase opens the configured database and applies migrations.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg *config.Config) *sql.DB {
	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database, cfg.Database.Driver); err != nil {
		_ = database.Close()
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// run serves HTTP until ctx is cancelled by a signal.
func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, database *sql.DB) error {
	container, err := app.NewContainer(cfg, database)
	if err != nil {
		return err
	}
	application, err := app.New(container, logger)
	if err != nil {
		return err
	}
	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
