package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/buildinfo"
	"github.com/dmitrijs2005/fundraise/internal/cli"
	"github.com/dmitrijs2005/fundraise/internal/config"
	"github.com/dmitrijs2005/fundraise/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fundraise: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logOut, err := logging.OpenOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		return err
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return err
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "stopped with error", "error", err)
		return err
	}
	return nil
}
