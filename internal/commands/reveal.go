package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
)

// NewRevealCommand creates a new cobra command for the reveal subcommand.
func NewRevealCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "reveal [flags] [input-dir]",
		Aliases: []string{"dec", "decrypt", "inverse"},
		Short:   "Subtract the keystream from every file of a directory",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: preRun(cfg, keystream.Inverse),
		RunE:    runE(cfg),
	}
}
