package processor

// Result represents the outcome of padding a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Size of the input in bytes
	OriginalSize uint64

	// Output file size in bytes
	OutputSize int64

	// Media type the output was tagged with
	MediaType string

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the results of a run.
type Summary struct {
	Processed int
	Errored   int
	TotalSize int64
}
