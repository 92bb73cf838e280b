package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"RestoReservasi/internal/app"
	"RestoReservasi/internal/config"
	"RestoReservasi/internal/handlers/cli"
	"RestoReservasi/internal/version"
	"RestoReservasi/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	logger := logging.GetLogger()
	logger.Info("Start Main")
	defer logger.Info("End Main")

	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file: %v", err)
	}

	cfg := config.GetConfig()
	logging.SetDebug(cfg.LOG.Debug == 1)
	logger.Infof("Version %s", version.GetVersion().String())

	a, err := app.New(cfg, os.Stdout)
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewApp(ctx, a).Run(os.Args); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}
