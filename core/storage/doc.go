// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so map exports can be fetched from, and
// inspection reports written to, AWS S3 or a self-hosted MinIO bucket.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads a whole object (a .map export).
//   - WriteObject: uploads a byte slice with a content type (a report).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	text, err := storage.ReadObject(ctx, client, "maps", "worlds/vostria.map")
package storage
