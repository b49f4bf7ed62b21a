// Package resolve joins the positional references of a classified export.
//
// Countries reference provinces, provinces reference their country and
// burgs, and burgs reference both. Resolution therefore runs in two passes
// over flat, ID-indexed collections:
//
//   - PassOne joins culture on countries and burgs, country on provinces and
//     burgs, and builds the burg to province inverse index.
//   - PassTwo replaces each province's member burg IDs with burg summaries
//     carrying their document handles, and attaches the representative
//     burg's position as the province centroid.
//
// No record is mutated. Every read returns a new slice of resolved values,
// and references that do not resolve become a Summary with Known false.
//
// Handles are the identities of materialized documents. They are attached
// when a collection is read, after the collections it references have been
// reconciled.
package resolve
