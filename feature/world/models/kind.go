package models

// Kind is the record kind a classified source line holds.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindProvinces
	KindBurgs
	KindCountries
	KindReligions
	KindCultures
	KindRivers
)

// Kinds lists every recognized kind in classification precedence order.
var Kinds = []Kind{KindProvinces, KindBurgs, KindCountries, KindReligions, KindCultures, KindRivers}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindProvinces:
		return "provinces"
	case KindBurgs:
		return "burgs"
	case KindCountries:
		return "countries"
	case KindReligions:
		return "religions"
	case KindCultures:
		return "cultures"
	case KindRivers:
		return "rivers"
	default:
		return "unrecognized"
	}
}

// Collection returns the document collection name the kind is written to.
func (k Kind) Collection() string {
	switch k {
	case KindProvinces:
		return "Provinces"
	case KindBurgs:
		return "Burgs"
	case KindCountries:
		return "Countries"
	case KindReligions:
		return "Religions"
	case KindCultures:
		return "Cultures"
	case KindRivers:
		return "Rivers"
	default:
		return ""
	}
}

// HasSentinel reports whether the first element of the collection is a placeholder.
func (k Kind) HasSentinel() bool {
	return k != KindRivers && k != KindUnrecognized
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) Kind {
	for _, k := range Kinds {
		if k.String() == s || k.Collection() == s {
			return k
		}
	}
	return KindUnrecognized
}
