package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/econdash/internal/client/cli"
	"github.com/dmitrijs2005/econdash/internal/client/config"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
