package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lostfound/internal/buildinfo"
	"github.com/dmitrijs2005/lostfound/internal/client/cli"
	"github.com/dmitrijs2005/lostfound/internal/client/client"
	"github.com/dmitrijs2005/lostfound/internal/config"
	"github.com/dmitrijs2005/lostfound/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, closeFn, err := client.Bootstrap(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("error initializing storage: %v", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Error(ctx, "closing storage", "error", err)
		}
	}()

	cli.NewApp(catalog, os.Stdin, os.Stdout).Run(ctx)
}
