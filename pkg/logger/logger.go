// Package logger owns the process-wide zerolog logger. Init builds it once;
// Get hands it out to code that is not reached by dependency injection.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	root zerolog.Logger
)

// Init configures the shared logger and returns it. Level accepts trace,
// debug, info, warn and error; anything else falls back to info. Pretty
// switches from JSON to coloured console output for local development.
// Repeated calls return the logger built by the first one.
func Init(level string, pretty bool) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var out = os.Stdout
		writer := zerolog.New(out)
		if pretty {
			writer = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
		}

		lvl := parseLevel(level)
		zerolog.SetGlobalLevel(lvl)

		root = writer.Level(lvl).With().Timestamp().Caller().Logger()
	})
	return root
}

// Get returns the shared logger, building a default JSON logger at info
// level if Init has not run yet.
func Get() zerolog.Logger {
	return Init("info", false)
}

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
