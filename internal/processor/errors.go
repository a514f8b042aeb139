package processor

import "errors"

var (
	// ErrOpenInput is returned when an input file cannot be opened.
	ErrOpenInput = errors.New("opening input file")
	// ErrWriteOutput is returned when an output file cannot be created or committed.
	ErrWriteOutput = errors.New("writing output file")
	// ErrPartialFailure is returned after a batch in which at least one file failed.
	ErrPartialFailure = errors.New("some files could not be processed")
)
