package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
	"github.com/idelchi/goxor/internal/prompt"
)

// DirectionPrompt asks for the direction when the run command got none.
const DirectionPrompt = "enc/dec: "

// NewRunCommand creates a new cobra command for the run subcommand.
// The direction is taken from the first argument or asked for interactively.
func NewRunCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run [flags] [enc|dec] [input-dir]",
		Short: "Obfuscate or reveal, asking for anything not given on the command line",
		Args:  cobra.MaximumNArgs(2), //nolint:mnd
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var selector string

			if len(args) > 0 {
				selector, args = args[0], args[1:]
			} else {
				answer, err := prompt.Line(cmd.InOrStdin(), cmd.ErrOrStderr(), DirectionPrompt)
				if err != nil {
					return fmt.Errorf("reading direction: %w", err)
				}

				selector = answer
			}

			direction, err := keystream.ParseDirection(selector)
			if err != nil {
				return err
			}

			return configure(cmd, cfg, direction, args)
		},
		RunE: runE(cfg),
	}
}
