// Package burgurl derives the city generator URL of a settlement.
//
// Parameters are written in a fixed order:
//
//	?random=0&continuous=0&name=&population=&size=&seed=&coast=&citadel=&plaza=&temple=&walls=&shantytown=
//
// The seed is the map seed followed by the burg's index in the unfiltered
// burg collection, zero-padded to four digits. Flags are 0 or 1. The
// generator performs no network I/O.
package burgurl
