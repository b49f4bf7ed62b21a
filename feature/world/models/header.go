package models

// MapHeader holds the metadata parsed from the pipe-delimited first line.
// Width and Height are nil when the field is missing or not an integer.
type MapHeader struct {
	Seed   string `json:"seed,omitempty" yaml:"seed,omitempty"`
	Width  *int   `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int   `json:"height,omitempty" yaml:"height,omitempty"`
}

// HasSeed reports whether a seed was present.
func (h MapHeader) HasSeed() bool {
	return h.Seed != ""
}
