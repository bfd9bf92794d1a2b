package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/drelich/minefield-server/internal/app"
	"github.com/drelich/minefield-server/internal/config"
	"github.com/drelich/minefield-server/internal/logging"
)

func main() {
	logger, err := logging.New(config.Development(), config.LogFile())
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := app.New(logger)
	if err := a.Start(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
