package classify

import (
	"encoding/json"

	"rwk-afmg/feature/world/models"
)

const (
	religionSentinel = "No religion"
	cultureSentinel  = "Wildlands"
)

// probe is one element of a parsed line, reduced to its top-level fields.
// Elements that are not objects probe as having no fields.
type probe map[string]json.RawMessage

func newProbe(elems []json.RawMessage, i int) probe {
	if i >= len(elems) {
		return nil
	}
	var p probe
	if err := json.Unmarshal(elems[i], &p); err != nil {
		return nil
	}
	return p
}

func (p probe) has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p probe) nameIs(want string) bool {
	raw, ok := p["name"]
	if !ok {
		return false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return false
	}
	return name == want
}

// rule is one row of the decision table.
type rule struct {
	kind  models.Kind
	match func(first, second probe) bool
}

// rules is evaluated top to bottom and the first match wins, since the
// predicates overlap.
var rules = []rule{
	{models.KindProvinces, func(_, second probe) bool { return second.has("state") && !second.has("cell") }},
	{models.KindBurgs, func(_, second probe) bool { return second.has("population") && second.has("citadel") }},
	{models.KindCountries, func(first, _ probe) bool { return first.has("diplomacy") }},
	{models.KindReligions, func(first, _ probe) bool { return first.nameIs(religionSentinel) }},
	{models.KindCultures, func(first, _ probe) bool { return first.nameIs(cultureSentinel) }},
	{models.KindRivers, func(first, _ probe) bool { return first.has("mouth") }},
}

// Classify assigns a kind to the elements of one parsed line by field presence.
func Classify(elems []json.RawMessage) models.Kind {
	first, second := newProbe(elems, 0), newProbe(elems, 1)
	for _, r := range rules {
		if r.match(first, second) {
			return r.kind
		}
	}
	return models.KindUnrecognized
}
