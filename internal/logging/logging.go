// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global log level and routes log output to w,
// human-readable for the "console" format and JSON lines otherwise.
func Setup(level, format string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("unknown log level %q", level)
	}

	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch format {
	case "console":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
		}).With().Timestamp().Logger()
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}
