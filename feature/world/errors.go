package world

import "errors"

var (
	// ErrNoBucket is returned by bucket operations when no storage client is configured.
	ErrNoBucket = errors.New("object storage is not configured")
	// ErrNotFound is returned when a requested burg or collection does not exist.
	ErrNotFound = errors.New("not found")
)
