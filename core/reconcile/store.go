package reconcile

import "context"

// Store is the document store a plan is applied to.
type Store interface {
	// List returns the identities materialized for a collection, in creation order.
	// An absent collection yields an empty slice and no error.
	List(ctx context.Context, collection string) ([]Materialized, error)

	// CreateMany creates documents and returns their identities in input order.
	CreateMany(ctx context.Context, collection string, docs []Document) ([]string, error)

	// UpdateMany overwrites existing documents. Permission is left untouched.
	UpdateMany(ctx context.Context, collection string, updates []Update) error
}

// Dropper is implemented by stores that can delete a whole collection.
type Dropper interface {
	Drop(ctx context.Context, collection string) error
}

// Reader is implemented by stores that can return stored documents.
type Reader interface {
	Documents(ctx context.Context, collection string) ([]Stored, error)
}
