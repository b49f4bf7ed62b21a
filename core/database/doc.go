// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file (or
// ":memory:") depending on the configured driver. The document store in
// core/docstore is built on the returned *gorm.DB.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the `integrity` command, which
// verifies that the documents table carries the columns the importer writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "documents", []string{"id", "collection"})
package database
