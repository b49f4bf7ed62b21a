package graph

import (
	"rwk-afmg/feature/world/models"
)

// Store holds the classified collections of one export, addressable by positional ID.
// It is populated once by New and never mutated afterwards.
type Store struct {
	header      models.MapHeader
	collections map[models.Kind][]models.Record
	index       map[models.Kind]map[int]int
}

// New builds a store. The leading placeholder of every collection that has one
// is kept in All but left out of the ID index, so looking it up reports not found.
func New(header models.MapHeader, collections map[models.Kind][]models.Record) *Store {
	s := &Store{
		header:      header,
		collections: make(map[models.Kind][]models.Record, len(collections)),
		index:       make(map[models.Kind]map[int]int, len(collections)),
	}

	for kind, records := range collections {
		s.collections[kind] = records

		idx := make(map[int]int, len(records))
		for pos, r := range records {
			if pos == 0 && kind.HasSentinel() {
				continue
			}
			if r.IsEmpty() {
				continue
			}
			if _, dup := idx[r.RecordID()]; dup {
				continue
			}
			idx[r.RecordID()] = pos
		}
		s.index[kind] = idx
	}

	return s
}

// Header returns the parsed map header.
func (s *Store) Header() models.MapHeader {
	return s.header
}

// Has reports whether the export contained a collection of kind.
func (s *Store) Has(kind models.Kind) bool {
	_, ok := s.collections[kind]
	return ok
}

// Get returns the record with the given ID.
func (s *Store) Get(kind models.Kind, id int) (models.Record, bool) {
	pos, ok := s.index[kind][id]
	if !ok {
		return nil, false
	}
	return s.collections[kind][pos], true
}

// All returns the collection in source order, placeholder included.
func (s *Store) All(kind models.Kind) []models.Record {
	return s.collections[kind]
}

// LeadingSentinelStripped returns the collection without its placeholder head.
// Collections without a placeholder are returned unchanged.
func (s *Store) LeadingSentinelStripped(kind models.Kind) []models.Record {
	records := s.collections[kind]
	if !kind.HasSentinel() || len(records) == 0 {
		return records
	}
	return records[1:]
}

// Len returns the number of records of kind, placeholder included.
func (s *Store) Len(kind models.Kind) int {
	return len(s.collections[kind])
}

// Cultures returns the culture collection in source order.
func (s *Store) Cultures() []*models.Culture { return typed[*models.Culture](s, models.KindCultures) }

// Countries returns the country collection in source order.
func (s *Store) Countries() []*models.Country { return typed[*models.Country](s, models.KindCountries) }

// Provinces returns the province collection in source order.
func (s *Store) Provinces() []*models.Province { return typed[*models.Province](s, models.KindProvinces) }

// Burgs returns the burg collection in source order.
func (s *Store) Burgs() []*models.Burg { return typed[*models.Burg](s, models.KindBurgs) }

// Religions returns the religion collection in source order.
func (s *Store) Religions() []*models.Religion { return typed[*models.Religion](s, models.KindReligions) }

// Rivers returns the river collection in source order.
func (s *Store) Rivers() []*models.River { return typed[*models.River](s, models.KindRivers) }

// Culture looks up a culture by ID.
func (s *Store) Culture(id int) (*models.Culture, bool) { return lookup[*models.Culture](s, models.KindCultures, id) }

// Country looks up a country by ID.
func (s *Store) Country(id int) (*models.Country, bool) { return lookup[*models.Country](s, models.KindCountries, id) }

// Province looks up a province by ID.
func (s *Store) Province(id int) (*models.Province, bool) { return lookup[*models.Province](s, models.KindProvinces, id) }

// Burg looks up a burg by ID.
func (s *Store) Burg(id int) (*models.Burg, bool) { return lookup[*models.Burg](s, models.KindBurgs, id) }

func typed[T models.Record](s *Store, kind models.Kind) []T {
	records := s.collections[kind]
	out := make([]T, 0, len(records))
	for _, r := range records {
		if t, ok := r.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func lookup[T models.Record](s *Store, kind models.Kind, id int) (T, bool) {
	var zero T
	r, ok := s.Get(kind, id)
	if !ok {
		return zero, false
	}
	t, ok := r.(T)
	return t, ok
}
