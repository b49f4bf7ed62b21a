package models

import (
	"encoding/json"

	"rwk-afmg/core/utils"
)

// Fields is the loosely typed body of one source record.
// Numbers decode as float64, matching encoding/json.
type Fields map[string]any

// DecodeFields decodes a JSON object. Anything else yields nil.
func DecodeFields(raw json.RawMessage) Fields {
	var f Fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}

// Has reports whether key is present, whatever its value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Fields) Int(key string) int {
	return utils.ToInt(f[key])
}

func (f Fields) Float(key string) float64 {
	return utils.ToFloat(f[key])
}

func (f Fields) String(key string) string {
	return utils.ToString(f[key])
}

func (f Fields) Bool(key string) bool {
	return utils.ToBool(f[key])
}

// Flag coerces a field to 0 or 1.
func (f Fields) Flag(key string) int {
	return utils.BoolToInt(utils.ToBool(f[key]))
}

// Ints reads a numeric array. Non-array values yield nil.
func (f Fields) Ints(key string) []int {
	list, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(list))
	for _, v := range list {
		out = append(out, utils.ToInt(v))
	}
	return out
}

// Strings reads an array as strings. Non-array values yield nil.
func (f Fields) Strings(key string) []string {
	list, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, utils.ToString(v))
	}
	return out
}

// Point reads a two-element coordinate array.
func (f Fields) Point(key string) *Point {
	list, ok := f[key].([]any)
	if !ok || len(list) < 2 {
		return nil
	}
	return &Point{X: utils.ToFloat(list[0]), Y: utils.ToFloat(list[1])}
}
