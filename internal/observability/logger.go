// Package observability provides logging and metrics for nodesim.
package observability

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger for this process and
// returns it. The level string follows zerolog names (debug, info, warn,
// error); unknown values fall back to info.
func InitLogger(app, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", app).
		Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps a config level string to a zerolog level, defaulting to
// info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
