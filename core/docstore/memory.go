package docstore

import (
	"context"
	"fmt"
	"sync"

	"rwk-afmg/core/reconcile"

	"github.com/google/uuid"
)

// MemoryStore keeps documents in process memory.
// It backs dry runs, the HTTP classify preview and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]reconcile.Stored
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]reconcile.Stored)}
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]reconcile.Materialized, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]reconcile.Materialized, 0, len(docs))
	for _, d := range docs {
		out = append(out, reconcile.Materialized{Identity: d.Identity, SourceID: d.SourceID})
	}
	return out, nil
}

func (s *MemoryStore) CreateMany(_ context.Context, collection string, docs []reconcile.Document) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id := uuid.NewString()
		s.collections[collection] = append(s.collections[collection], reconcile.Stored{Identity: id, Document: d})
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) UpdateMany(_ context.Context, collection string, updates []reconcile.Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	index := make(map[string]int, len(docs))
	for i, d := range docs {
		index[d.Identity] = i
	}

	for _, u := range updates {
		if _, ok := index[u.Identity]; !ok {
			return fmt.Errorf("%s/%s: %w", collection, u.Identity, ErrNotFound)
		}
	}

	for _, u := range updates {
		i := index[u.Identity]
		permission := docs[i].Permission
		docs[i].Document = u.Document
		docs[i].Permission = permission
	}
	return nil
}

func (s *MemoryStore) Drop(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, collection)
	return nil
}

func (s *MemoryStore) Documents(_ context.Context, collection string) ([]reconcile.Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reconcile.Stored, len(s.collections[collection]))
	copy(out, s.collections[collection])
	return out, nil
}

// Collections returns the names of every non-empty collection.
func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}
