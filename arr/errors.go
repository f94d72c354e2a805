package arr

import "errors"

var (
	// ErrInvalidArgument is returned when a count, size or document is
	// outside what an operation accepts.
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
