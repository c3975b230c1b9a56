package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the application logger: console output in development, JSON
// everywhere else.
func New(level string, development bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	logLevel := zerolog.InfoLevel
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}

	if development {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Str("service", "backoffice-api").
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "backoffice-api").
		Logger()
}
