package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
	"github.com/idelchi/goxor/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "check [flags] [input-dir]",
		Short:   "Validate that include/exclude patterns match files of the input directory",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: preRun(cfg, keystream.Forward),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg, cmd.OutOrStdout())
		},
	}
}
