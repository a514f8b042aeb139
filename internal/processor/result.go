package processor

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Number of bytes transformed
	Size int64

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the results of a batch.
type Summary struct {
	Processed int
	Errored   int
	Size      int64
}
