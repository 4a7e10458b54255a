package store

import "errors"

// Common store errors used across all port implementations.
var (
	// ErrLoadFailed is returned when the slot cannot be read from the
	// underlying storage. This is an infrastructure failure, distinct
	// from a corrupt payload, which the document store recovers from
	// silently.
	ErrLoadFailed = errors.New("failed to load persisted document")

	// ErrSaveFailed is returned when the slot cannot be written.
	ErrSaveFailed = errors.New("failed to save document")

	// ErrResetFailed is returned when the slot cannot be emptied.
	ErrResetFailed = errors.New("failed to reset document")
)
