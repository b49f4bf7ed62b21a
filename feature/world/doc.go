// Package world ingests map exports into a document store.
//
// A map export is a text file: a pipe-delimited header line followed by one
// JSON array per line. The subpackages take it apart in stages:
//
//   - classify: parses the header and recognizes each array (cultures, countries, provinces, burgs, religions, rivers).
//   - graph: the immutable entity store addressed by kind and id.
//   - resolve: joins references in two passes, breaking the country, province and burg cycle.
//   - burgurl: derives procedural city generator URLs.
//   - render: turns resolved entities into document content.
//   - importer: runs the ordered reconciliation of every collection.
//
// # HTTP Endpoints
//
//   - POST /world/import : Runs an ingestion over inline text or a bucket object.
//   - POST /world/classify : Classifies a raw export.
//   - POST /world/inspect : Returns the resolved view of a raw export.
//   - POST /world/burgs/:id/url : Builds the city URL of one burg.
//   - GET /world/collections/:name : Lists materialized documents.
package world
