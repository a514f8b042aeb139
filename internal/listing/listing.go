// Package listing enumerates the regular files directly inside a directory,
// optionally narrowed by include/exclude glob patterns on file names.
package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrMissingDirectory is returned when the input directory does not exist or is not a directory.
var ErrMissingDirectory = errors.New("input directory does not exist")

// Filter selects file names based on include/exclude glob patterns.
// Empty includes means "match all". Excludes always win.
type Filter struct {
	includes []string
	excludes []string
}

// NewFilter validates the patterns and returns a reusable filter.
func NewFilter(includes, excludes []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, includes...), excludes...) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}

	return &Filter{
		includes: normalizePatterns(includes),
		excludes: normalizePatterns(excludes),
	}, nil
}

// Match reports whether the file name passes the filter.
func (f *Filter) Match(name string) bool {
	if f == nil {
		return true
	}

	included := len(f.includes) == 0 || matchAny(f.includes, name)

	return included && !matchAny(f.excludes, name)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are validated in NewFilter.
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// normalizePatterns strips leading "./" so patterns written relative to the directory still match names.
func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		out = append(out, strings.TrimPrefix(p, "./"))
	}

	return out
}

// List returns the paths of regular files directly inside dir that pass the filter, sorted by name.
// Subdirectories and other non-regular entries are skipped; symlinks to regular files are kept.
// scanned counts every regular file seen before filtering.
func List(dir string, flt *Filter) (files []string, scanned int, err error) {
	info, err := os.Stat(dir)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, 0, fmt.Errorf("%w: %q", ErrMissingDirectory, dir)
	case err != nil:
		return nil, 0, fmt.Errorf("stat %q: %w", dir, err)
	case !info.IsDir():
		return nil, 0, fmt.Errorf("%w: %q is not a directory", ErrMissingDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if !isRegular(entry, path) {
			log.Debug().Str("path", path).Msg("skipping non-regular entry")

			continue
		}

		scanned++

		if !flt.Match(entry.Name()) {
			log.Debug().Str("path", path).Msg("excluded by pattern")

			continue
		}

		files = append(files, path)
	}

	return files, scanned, nil
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
