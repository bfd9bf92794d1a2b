package config

import (
	"fmt"
	"os"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	return os.Getenv("APP_PORT")
}

// LogFile names the rotating log file. Empty disables file logging.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}

func requireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("no %s env variable set", name)
	}
	return value, nil
}
