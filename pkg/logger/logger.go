package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// New creates a configured logrus logger
func New(cfg Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetOutput(os.Stdout)
	return log
}
