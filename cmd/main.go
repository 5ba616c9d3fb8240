package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bargain/internal/application"
	"bargain/internal/config"
	"bargain/pkg/contextx"
	"bargain/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log, err := logx.NewLogger(os.Stdout, cfg.App.LogFormat, cfg.App.LogLevel)
	if err != nil {
		slog.Error("logger setup", logx.Error(err))
		os.Exit(1)
	}

	slog.SetDefault(log)

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
