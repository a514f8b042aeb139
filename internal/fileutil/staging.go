// Package fileutil provides staged file writes: output goes to a temporary file next to the
// target and is renamed into place only once it is complete.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staging holds state for one staged output file.
type Staging struct {
	// SrcInfo describes the file the output is derived from.
	SrcInfo os.FileInfo
	// File is the temporary file to write the output to.
	File *os.File

	tmpName string
	target  string
}

// NewStaging stats the source file and creates a temporary file in the target's directory.
// Callers must defer Discard.
func NewStaging(src, target string) (*Staging, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", src, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &Staging{
		SrcInfo: info,
		File:    tmpFile,
		tmpName: tmpFile.Name(),
		target:  target,
	}, nil
}

// Discard closes the temporary file and removes it if *errp is non-nil.
func (s *Staging) Discard(errp *error) {
	s.File.Close() //nolint:errcheck,gosec // best-effort cleanup, Commit reports close errors

	if *errp != nil {
		os.Remove(s.tmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Commit copies the source's executable bits onto 0o600, optionally carries over the source's
// modification time, and renames the temporary file to the target. Everything that can fail
// happens before the rename, so an error always leaves the target untouched.
// It returns the size of the committed file.
func (s *Staging) Commit(preserveTimestamps bool) (int64, error) {
	const (
		ownerReadWrite = 0o600
		executableBits = 0o111
	)

	perm := os.FileMode(ownerReadWrite) | s.SrcInfo.Mode().Perm()&executableBits

	if err := s.File.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	info, err := s.File.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat temporary file: %w", err)
	}

	if err := s.File.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if preserveTimestamps {
		modTime := s.SrcInfo.ModTime()
		if err := os.Chtimes(s.tmpName, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	if err := os.Rename(s.tmpName, s.target); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return info.Size(), nil
}
