package logger

import (
	"os"

	"github.com/platoo/payment-service/api/config"
	"github.com/rs/zerolog"
)

// New builds the process logger from configuration.
func New(cfg *config.Config) zerolog.Logger {
	var logLevel zerolog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"

	var baseLogger zerolog.Logger
	if cfg.LogFormat == "json" {
		// Production: JSON to stdout for log shippers
		baseLogger = zerolog.New(os.Stdout)
	} else {
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		baseLogger = zerolog.New(consoleWriter)
	}

	return baseLogger.
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "payment-service").
		Logger()
}
