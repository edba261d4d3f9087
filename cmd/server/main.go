// Package main runs the sango HTTP server.
//
// Startup wires the environment configuration, the MongoDB connection,
// and every module router listed in modules/manifest.go, then serves
// until an interrupt triggers graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sango-kit/sango/internal/config"
	"github.com/sango-kit/sango/internal/database"
	"github.com/sango-kit/sango/internal/httpserver"
	"github.com/sango-kit/sango/internal/router"
	"github.com/sango-kit/sango/modules"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, disconnect, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := disconnect(shutdownCtx); err != nil {
			logger.Error("mongodb disconnect failed", "error", err)
		}
	}()
	logger.Info("connected to mongodb", "database", cfg.DatabaseName)

	registry, err := router.NewRegistryFromManifest(modules.Manifest())
	if err != nil {
		return err
	}

	deps := router.Deps{DB: db, Logger: logger}
	discovered := router.Discover(registry, deps)

	mux := http.NewServeMux()
	mounted := router.Mount(mux, discovered)
	logger.Info("modules mounted", "count", mounted, "registered", len(discovered))

	srv := httpserver.New(cfg.ServerAddress, mux, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// newLogger builds the process logger from the configured level and format.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
