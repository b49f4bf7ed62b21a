// Package classify turns the text of a map export into typed collections.
//
// The export has no schema: line 0 is a pipe-delimited header and the rest
// is a mix of noise and JSON arrays. Each array is typed by a fixed decision
// table of field-presence predicates over its first two elements:
//
//	second has state, no cell        -> provinces
//	second has population + citadel  -> burgs
//	first has diplomacy              -> countries
//	first.name == "No religion"      -> religions
//	first.name == "Wildlands"        -> cultures
//	first has mouth                  -> rivers
//
// The first matching row wins. Elements that are not objects have no fields,
// so evaluation moves on to the next row.
//
// # Usage
//
//	store, report, err := classify.Parse(text)
//	if errors.Is(err, classify.ErrEmptySource) { ... }
package classify
