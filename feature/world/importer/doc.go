// Package importer runs one ingestion of a map export: it classifies the
// export, resolves references in two passes, renders each entity and
// reconciles every collection against the document store in dependency order.
//
// Each run owns a Session holding its identifier, the map header and the
// identity handles materialized so far. Nothing is shared between runs.
package importer
