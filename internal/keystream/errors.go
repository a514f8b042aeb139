package keystream

import "errors"

var (
	// ErrInvalidKeyFormat is returned when a key is empty or contains anything other than decimal digits.
	ErrInvalidKeyFormat = errors.New("invalid key format")
	// ErrInvalidDirection is returned when a direction selector is neither forward nor inverse.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidChunkSize is returned when a chunk size is not positive.
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	// ErrRead is returned when the source of a stream cannot be read.
	ErrRead = errors.New("reading input")
	// ErrWrite is returned when the sink of a stream cannot be written.
	ErrWrite = errors.New("writing output")
)
