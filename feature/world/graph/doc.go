// Package graph holds the typed collections of one map export.
//
// The Store is a pure container: it is built once from classified records
// and only read afterwards. Records are addressed by their positional ID, and
// the placeholder head of sentinel collections (cultures, countries,
// religions, provinces, burgs) is not addressable, so references to ID 0
// resolve as not found.
//
// # Usage
//
//	store := graph.New(header, map[models.Kind][]models.Record{...})
//	culture, ok := store.Culture(1)
//	all := store.LeadingSentinelStripped(models.KindCountries)
package graph
