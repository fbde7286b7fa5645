package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pwnwatch-hq/pwnwatch/internal/app"
	"github.com/pwnwatch-hq/pwnwatch/internal/config"
	"github.com/pwnwatch-hq/pwnwatch/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "watchdog start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("watchdog starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watchdog, err := app.NewWatchdog(ctx, cfg, logger.Default())
	if err != nil {
		logger.ErrorObj("failed to initialize watchdog", "error", err)
		return err
	}

	if err := watchdog.Run(ctx); err != nil {
		return fmt.Errorf("watchdog run: %w", err)
	}

	return nil
}
