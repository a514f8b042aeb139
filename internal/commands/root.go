package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
)

// NewRootCommand creates the root command with common configuration.
// Its persistent flags are shared by every subcommand and can also be set through
// GOXOR_-prefixed environment variables.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "goxor [flags] command [flags]"
	root.Short = "Batch file obfuscation with a decimal keystream"
	root.Long = `Obfuscates every file of a directory by adding a repeating key, derived from a decimal
number of any length, to each byte. Revealing subtracts the same key again.

This is obfuscation, not encryption: it offers no real confidentiality.`

	// main logs the returned error itself.
	root.SilenceUsage = true
	root.SilenceErrors = true

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Decimal key of any length")
	flags.StringP("key-file", "f", "", "Path to a file containing the decimal key")

	flags.StringP("input", "i", "", `Input directory (default "raw" to obfuscate, "encrypted" to reveal)`)
	flags.StringP("output", "o", "", `Output directory (default "encrypted" to obfuscate, "decrypted" to reveal)`)
	flags.String("suffix", ".enc", "Suffix appended when obfuscating and stripped when revealing")
	flags.Int("chunk-size", keystream.DefaultChunkSize, "Number of bytes read and transformed at a time")

	flags.StringSlice("include", nil, "Only process file names matching these glob patterns")
	flags.StringSlice("exclude", nil, "Skip file names matching these glob patterns")
	flags.String("exclude-from", "", "JSONC file with an array of exclude patterns")

	flags.BoolP("delete", "d", false, "Delete the input file after it was processed successfully")
	flags.Bool("dry", false, "Show what would be processed without writing anything")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print statistics after the run")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of each input to its output")

	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")

	root.AddCommand(
		NewObfuscateCommand(cfg),
		NewRevealCommand(cfg),
		NewRunCommand(cfg),
		NewCheckCommand(cfg),
	)

	return root
}
