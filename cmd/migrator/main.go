package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/drelich/minefield-server/internal/config"
	"github.com/drelich/minefield-server/internal/database"
	"github.com/drelich/minefield-server/internal/logging"
)

func main() {
	logger, err := logging.New(config.Development(), config.LogFile())
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	migrator, err := database.Migrate()
	if err != nil {
		logger.WithError(err).Error("failed to migrate database")
		os.Exit(1)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		logger.WithError(err).Error("failed to check migration version")
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
