// Command goxor obfuscates and reveals the files of a directory with a keystream
// derived from a decimal key of any length.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/idelchi/goxor/internal/commands"
	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/logging"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := logging.Setup("info", "console", os.Stderr); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cfg := &config.Config{}

	err := commands.NewRootCommand(cfg, version).ExecuteContext(ctx)

	stop()

	if err != nil {
		log.Error().Err(err).Msg("goxor failed")

		os.Exit(1)
	}
}
