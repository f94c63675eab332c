// Package logger builds the process-wide structured logger backed by
// zerolog. Services receive the logger by value and derive their own
// sub-loggers with With().
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger at the given level. In the development environment
// output is human-friendly console text; everywhere else it is JSON.
func New(level, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := zerolog.New(os.Stdout)
	if env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	return out.Level(lvl).With().Timestamp().Caller().Logger()
}

// parseLevel converts a level name to a zerolog.Level, defaulting to
// info when the name is empty or unrecognised.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
