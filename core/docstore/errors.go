package docstore

import "errors"

// ErrNotFound is returned when an update targets an identity that does not exist.
var ErrNotFound = errors.New("document not found")

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown document store backend")
