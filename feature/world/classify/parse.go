package classify

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"rwk-afmg/feature/world/graph"
	"rwk-afmg/feature/world/models"
)

// ErrEmptySource is returned when the export text has no content.
var ErrEmptySource = errors.New("source text is empty")

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Report describes what Parse found.
type Report struct {
	Header models.MapHeader `json:"header" yaml:"header"`
	// Lines is the number of lines after the header.
	Lines int `json:"lines" yaml:"lines"`
	// Ignored counts lines that were not arrays or matched no rule.
	Ignored int `json:"ignored" yaml:"ignored"`
	// Counts is the element count per classified kind, placeholder included.
	Counts map[string]int `json:"counts" yaml:"counts"`
	// Duplicates lists kinds matched by more than one line; the last line wins.
	Duplicates []string `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// ParseHeader reads seed, width and height from the 4th, 5th and 6th pipe-delimited fields.
// Missing or malformed fields are left unset.
func ParseHeader(line string) models.MapHeader {
	fields := strings.Split(line, "|")

	var h models.MapHeader
	if len(fields) > 3 {
		h.Seed = strings.TrimSpace(fields[3])
	}
	if len(fields) > 4 {
		h.Width = parseDimension(fields[4])
	}
	if len(fields) > 5 {
		h.Height = parseDimension(fields[5])
	}
	return h
}

func parseDimension(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// Parse splits an export into lines, reads the header from the first one and
// classifies every other line that parses as a JSON array. Non-array lines are
// noise and skipped silently. Classification depends only on each line's shape,
// never on its position.
func Parse(text string) (*graph.Store, *Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrEmptySource
	}

	lines := lineBreaks.Split(text, -1)
	header := ParseHeader(lines[0])

	report := &Report{
		Header: header,
		Lines:  len(lines) - 1,
		Counts: make(map[string]int),
	}

	collections := make(map[models.Kind][]models.Record)
	for _, line := range lines[1:] {
		elems, ok := parseArray(line)
		if !ok {
			report.Ignored++
			continue
		}

		kind := Classify(elems)
		if kind == models.KindUnrecognized {
			report.Ignored++
			continue
		}

		if _, seen := collections[kind]; seen {
			report.Duplicates = append(report.Duplicates, kind.String())
		}
		collections[kind] = models.DecodeCollection(kind, elems)
		report.Counts[kind.String()] = len(elems)
	}

	return graph.New(header, collections), report, nil
}

func parseArray(line string) ([]json.RawMessage, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(line), &elems); err != nil {
		return nil, false
	}
	return elems, true
}
