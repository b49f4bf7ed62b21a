// Package utils provides common utility functions for the importer.
// It includes loose type conversion helpers used when reading map export
// records whose numeric fields may arrive as numbers, strings or booleans.
package utils
