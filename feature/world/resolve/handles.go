package resolve

import (
	"rwk-afmg/feature/world/models"
)

// Summary is a resolved reference to another entity.
// Known is false when the referenced ID did not resolve.
type Summary struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Handle string `json:"handle,omitempty" yaml:"handle,omitempty"`
	Known  bool   `json:"known" yaml:"known"`
}

// Display returns the name, or "unknown" for unresolved references.
func (s Summary) Display() string {
	if !s.Known {
		return "unknown"
	}
	return s.Name
}

// Handles maps entity IDs to the identity of the document materialized for them.
// It is filled in as each collection is reconciled. Not safe for concurrent writes.
type Handles struct {
	byKind map[models.Kind]map[int]string
}

// NewHandles creates an empty handle table.
func NewHandles() *Handles {
	return &Handles{byKind: make(map[models.Kind]map[int]string)}
}

// Set records the handle of an entity.
func (h *Handles) Set(kind models.Kind, id int, handle string) {
	m, ok := h.byKind[kind]
	if !ok {
		m = make(map[int]string)
		h.byKind[kind] = m
	}
	m[id] = handle
}

// Get returns the handle of an entity.
func (h *Handles) Get(kind models.Kind, id int) (string, bool) {
	if h == nil {
		return "", false
	}
	handle, ok := h.byKind[kind][id]
	return handle, ok
}

// Len returns the number of handles recorded for kind.
func (h *Handles) Len(kind models.Kind) int {
	if h == nil {
		return 0
	}
	return len(h.byKind[kind])
}

func (h *Handles) attach(kind models.Kind, s Summary) Summary {
	if !s.Known {
		return s
	}
	if handle, ok := h.Get(kind, s.ID); ok {
		s.Handle = handle
	}
	return s
}
