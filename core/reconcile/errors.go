package reconcile

import "errors"

var (
	// ErrCardinalityMismatch is raised when the prior identity count differs from the eligible count.
	ErrCardinalityMismatch = errors.New("cardinality mismatch between prior and new collection")

	// ErrOrderingMismatch is raised when positional pairing would attach an identity to a different entity.
	ErrOrderingMismatch = errors.New("ordering key mismatch between prior and new collection")

	// ErrNotConfirmed is returned when a destructive step runs without confirmation.
	ErrNotConfirmed = errors.New("destructive action requires confirmation")
)
