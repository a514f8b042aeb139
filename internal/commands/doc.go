// Package commands provides the command-line interface for the goxor tool.
//
// It implements commands for:
//   - obfuscation
//   - revealing
//   - interactive runs
//   - pattern checks
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
	"github.com/idelchi/goxor/internal/logging"
	"github.com/idelchi/goxor/internal/logic"
)

// EnvPrefix prefixes the environment variables that mirror the flags, e.g. GOXOR_KEY.
const EnvPrefix = "GOXOR"

// preRun returns a PreRunE handler for a fixed direction.
func preRun(cfg *config.Config, direction keystream.Direction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return configure(cmd, cfg, direction, args)
	}
}

// configure loads flags and environment into cfg, takes the input directory from the
// first positional argument if given, applies defaults, validates and sets up logging.
func configure(cmd *cobra.Command, cfg *config.Config, direction keystream.Direction, args []string) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	cfg.Direction = direction

	if len(args) > 0 {
		cfg.Input = args[0]
	}

	cfg.ApplyDefaults()

	if err := cobraext.Validate(cfg, cfg); err != nil {
		return err
	}

	return logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
}

// runE returns a RunE handler executing the main logic with the command's streams.
func runE(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return logic.Run(cmd.Context(), cfg, streams(cmd))
	}
}

func streams(cmd *cobra.Command) logic.Streams {
	return logic.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
