// Package logic implements the core business logic for obfuscating and revealing a directory.
package logic

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/keystream"
	"github.com/idelchi/goxor/internal/listing"
	"github.com/idelchi/goxor/internal/processor"
	"github.com/idelchi/goxor/internal/prompt"
)

// KeyPrompt is shown when no key was given by flag, environment or file.
const KeyPrompt = "digital key (decimal, arbitrary length): "

// Streams are the standard streams of a run.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run is the main logic of the application.
// Setup errors (key, input directory) abort before any file is opened;
// per-file errors are reported and the remaining files are still processed.
func Run(ctx context.Context, cfg *config.Config, streams Streams) error {
	if cfg.Show {
		return Show(cfg, streams.Out)
	}

	key, err := ResolveKey(cfg, streams)
	if err != nil {
		return err
	}

	log.Debug().Int("key_bytes", key.Len()).Stringer("direction", cfg.Direction).Msg("derived key")

	files, scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	start := time.Now()

	proc, err := processor.New(cfg, key, streams.Out)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	if cfg.Dry {
		return dryRun(cfg, proc, files, scanned, start, streams)
	}

	const dirPerm = 0o750

	if err := os.MkdirAll(cfg.Output, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	summary, err := proc.ProcessFiles(ctx, files)

	elapsed := time.Since(start)

	if cfg.Stats {
		printStats(streams.Err, scanned, scanned-len(files), summary, elapsed)
	}

	if !cfg.Quiet {
		fmt.Fprintf(streams.Err, "Total time: %.3f seconds\n", elapsed.Seconds())
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// ResolveKey derives the key from, in order, cfg.Key, cfg.KeyFile or an interactive prompt.
func ResolveKey(cfg *config.Config, streams Streams) (keystream.Key, error) {
	decimal := cfg.Key

	switch {
	case decimal != "":
	case cfg.KeyFile != "":
		data, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		decimal = strings.TrimSpace(string(data))
	default:
		answer, err := prompt.Secret(streams.In, streams.Err, KeyPrompt)
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		decimal = answer
	}

	key, err := keystream.DeriveKey(decimal)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	return key, nil
}

// resolveFiles lists the input directory and applies include/exclude filtering.
// Returns the matched files and the number of regular files scanned.
func resolveFiles(cfg *config.Config) ([]string, int, error) {
	excludes, err := excludePatterns(cfg)
	if err != nil {
		return nil, 0, err
	}

	flt, err := listing.NewFilter(cfg.Include, excludes)
	if err != nil {
		return nil, 0, fmt.Errorf("compiling patterns: %w", err)
	}

	files, scanned, err := listing.List(cfg.Input, flt)
	if err != nil {
		return nil, 0, err
	}

	log.Debug().Str("input", cfg.Input).Int("scanned", scanned).Int("selected", len(files)).Msg("listed input")

	return files, scanned, nil
}

// excludePatterns merges the exclude flags with the patterns of the exclude-from file.
func excludePatterns(cfg *config.Config) ([]string, error) {
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.ExcludeFrom == "" {
		return excludes, nil
	}

	patterns, err := listing.LoadPatterns(cfg.ExcludeFrom)
	if err != nil {
		return nil, fmt.Errorf("loading exclude patterns: %w", err)
	}

	return append(excludes, patterns...), nil
}

// dryRun previews what would be processed without writing anything.
func dryRun(cfg *config.Config, proc *processor.Processor, files []string, scanned int, start time.Time, streams Streams) error {
	var summary processor.Summary

	for _, file := range files {
		if !cfg.Quiet {
			fmt.Fprintf(streams.Out, "Would process %q -> %q\n", file, proc.OutputPath(file))
		}

		summary.Processed++

		if info, err := os.Stat(file); err == nil {
			summary.Size += info.Size()
		}
	}

	if cfg.Stats {
		printStats(streams.Err, scanned, scanned-len(files), summary, time.Since(start))
	}

	return nil
}

// Show writes the effective configuration as YAML, with the key masked.
func Show(cfg *config.Config, w io.Writer) error {
	masked := *cfg

	if masked.Key != "" {
		masked.Key = "<redacted>"
	}

	data, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}

func printStats(w io.Writer, scanned, excluded int, summary processor.Summary, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(w, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // Size is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.Size))))

	if seconds := duration.Seconds(); seconds > 0 {
		//nolint:gosec // rate is non-negative
		fmt.Fprintf(w, "  Rate:      %s/s\n", humanize.IBytes(uint64(float64(max(0, summary.Size))/seconds)))
	}

	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
