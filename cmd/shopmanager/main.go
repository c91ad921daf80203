// Package main implements the interactive shop manager: a single-process,
// menu-driven inventory and ordering tool backed by flat text files.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/shopmanager/internal/app"
	"github.com/abgdnv/shopmanager/internal/cli"
	"github.com/abgdnv/shopmanager/internal/config"
	"github.com/abgdnv/shopmanager/pkg/bootstrap"
	"github.com/abgdnv/shopmanager/pkg/config/configloader"
)

const appName = "shop"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads configuration and state, drives the menu until exit and flushes
// all stores back to disk. Flush failures are reported, not fatal.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](appName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", "config", cfg.String())

	application := app.Setup(cfg, logger)

	menu := cli.New(os.Stdin, os.Stdout, logger, application.Accounts, application.Shop)
	if err := menu.Run(ctx); err != nil {
		logger.Error("menu loop failed", "error", err)
	}

	if err := application.Flush(); err != nil {
		logger.Error("failed to flush state", "error", err)
	}
	return nil
}
