package logic

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/listing"
)

// RunCheck validates that every include/exclude pattern matches at least one file of the input directory.
func RunCheck(cfg *config.Config, w io.Writer) error {
	excludes, err := excludePatterns(cfg)
	if err != nil {
		return err
	}

	if len(cfg.Include) == 0 && len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	candidates, _, err := listing.List(cfg.Input, nil)
	if err != nil {
		return err
	}

	var failures int

	failures += checkPatterns(w, "include", cfg.Include, candidates, cfg.Quiet)
	failures += checkPatterns(w, "exclude", excludes, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}

// checkPatterns tests each pattern individually against the candidate file names.
// Returns the number of patterns that matched zero files.
func checkPatterns(w io.Writer, kind string, patterns, candidates []string, quiet bool) int {
	var failures int

	for _, pattern := range patterns {
		flt, err := listing.NewFilter([]string{pattern}, nil)
		if err != nil {
			fmt.Fprintf(w, "%s: %s: invalid pattern: %v\n", kind, pattern, err)

			failures++

			continue
		}

		var count int

		for _, path := range candidates {
			if flt.Match(filepath.Base(path)) {
				count++
			}
		}

		if count == 0 {
			fmt.Fprintf(w, "%s: %s: 0 files (ERROR)\n", kind, pattern)

			failures++
		} else if !quiet {
			fmt.Fprintf(w, "%s: %s: %d files\n", kind, pattern, count)
		}
	}

	return failures
}
