// Package models defines the typed records of a map export.
//
// Exports carry no schema, so every record is decoded from a loose Fields
// map with lenient coercion: numbers may arrive as strings, flags as bools or
// 0/1, and placeholders as `0` or `{}`. The raw Fields stay on each record so
// templates can reach source fields this package does not name.
//
// A record's ID is its `i` field when present, otherwise its position in the
// source array.
package models
