package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
)

// NewObfuscateCommand creates a new cobra command for the obfuscate subcommand.
func NewObfuscateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "obfuscate [flags] [input-dir]",
		Aliases: []string{"enc", "encrypt", "forward"},
		Short:   "Add the keystream to every file of a directory",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: preRun(cfg, keystream.Forward),
		RunE:    runE(cfg),
	}
}
