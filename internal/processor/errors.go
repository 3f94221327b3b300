package processor

import "errors"

var (
	// ErrTypeMismatch is returned when an input's detected media type differs from the required one.
	ErrTypeMismatch = errors.New("media type mismatch")
	// ErrOutputIsInput is returned when the output path of a file resolves to the file itself.
	ErrOutputIsInput = errors.New("output would overwrite input")
)
