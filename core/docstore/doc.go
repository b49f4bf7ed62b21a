// Package docstore implements reconcile.Store for the backends the importer
// can write to.
//
// # Backends
//
//   - GormStore: a "documents" table through GORM (MySQL or SQLite).
//   - RedisStore: an identity list per collection plus one JSON value per document.
//   - MemoryStore: process memory, used for dry runs and tests.
//
// Every backend keeps documents in creation order and records the SourceID
// each document was rendered from, so reconcile can verify positional pairing
// on the next run. Updates never change a document's permission.
//
// # Usage
//
//	store, closeFn, err := docstore.Open(ctx, cfg.Store, cfg.Database)
//	defer closeFn()
//	prior, err := store.List(ctx, "Burgs")
package docstore
