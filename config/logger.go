package config

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// InitLogger builds the application logger from the configured level
func InitLogger(level string) *logrus.Logger {
	logger = logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Unknown log level %q, defaulting to info", level)
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

// GetLogger returns the application logger, initializing a default one if
// InitLogger has not been called yet (unit tests mostly)
func GetLogger() *logrus.Logger {
	if logger == nil {
		return InitLogger("info")
	}
	return logger
}
