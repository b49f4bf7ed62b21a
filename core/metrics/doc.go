// Package metrics provides Prometheus metrics for ingestion runs.
//
// Collectors are registered on the default registry at init and exposed by
// Handler on the HTTP server's /metrics route.
package metrics
