package models

import "encoding/json"

// DecodeCollection decodes the elements of a classified line into records of kind.
// Elements that are not objects become empty placeholder records so that
// positions are preserved.
func DecodeCollection(kind Kind, elems []json.RawMessage) []Record {
	out := make([]Record, 0, len(elems))
	for i, raw := range elems {
		f := DecodeFields(raw)
		switch kind {
		case KindCultures:
			out = append(out, NewCulture(f, i))
		case KindReligions:
			out = append(out, NewReligion(f, i))
		case KindCountries:
			out = append(out, NewCountry(f, i))
		case KindProvinces:
			out = append(out, NewProvince(f, i))
		case KindBurgs:
			out = append(out, NewBurg(f, i))
		case KindRivers:
			out = append(out, NewRiver(f, i))
		default:
			return nil
		}
	}
	return out
}
