package model

import "errors"

// Error taxonomy. InvalidParameter aborts before any file I/O and is
// never retried; IOFailure carries the attempted path and is never
// retried either. Callers classify with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive duration, sampling
	// rate or time constant, a negative delay, or an empty waveform.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrIOFailure reports a directory creation or file write failure.
	ErrIOFailure = errors.New("io failure")
)
