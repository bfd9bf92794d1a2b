package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// New builds the process logger: colored text on stderr, debug level in
// development, and an optional rotating JSON file for deployments.
func New(development bool, logFile string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: development})
	if development {
		log.SetLevel(logrus.DebugLevel)
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}

	return log, nil
}
