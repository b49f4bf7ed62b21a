package burgurl

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"rwk-afmg/feature/world/models"
)

// DefaultBase is the city generator the URLs point at.
const DefaultBase = "http://fantasycities.watabou.ru/"

var (
	// ErrMissingSeed is returned when the map header carried no seed.
	ErrMissingSeed = errors.New("map seed is missing")

	// ErrBadPopulation is returned when the population is not a number once grouping punctuation is removed.
	ErrBadPopulation = errors.New("population is not numeric")
)

// Generator builds settlement URLs for an external city renderer.
type Generator struct {
	Base string
}

// New creates a generator. An empty base uses DefaultBase.
func New(base string) *Generator {
	if base == "" {
		base = DefaultBase
	}
	return &Generator{Base: base}
}

// Seed concatenates the map seed with the burg index left-padded to 4 digits.
func Seed(mapSeed string, index int) string {
	return fmt.Sprintf("%s%04d", mapSeed, index)
}

// Population strips grouping punctuation and parses the result.
func Population(raw string) (int, error) {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(strings.TrimSpace(raw))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPopulation, raw)
	}
	return n, nil
}

// Generate composes the URL for a burg at index in the full, unfiltered burg collection.
// The result is deterministic for a given seed, index and burg.
func (g *Generator) Generate(seed string, index int, burg *models.Burg) (string, error) {
	if seed == "" {
		return "", ErrMissingSeed
	}

	pop, err := Population(burg.Population)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(g.Base)
	b.WriteString("?random=0&continuous=0")
	writeParam(&b, "name", url.QueryEscape(burg.Name))
	writeParam(&b, "population", strconv.Itoa(pop))
	writeParam(&b, "size", strconv.Itoa(burg.Size))
	writeParam(&b, "seed", url.QueryEscape(Seed(seed, index)))
	writeParam(&b, "coast", strconv.Itoa(burg.Coast))
	writeParam(&b, "citadel", strconv.Itoa(burg.Citadel))
	writeParam(&b, "plaza", strconv.Itoa(burg.Plaza))
	writeParam(&b, "temple", strconv.Itoa(burg.Temple))
	writeParam(&b, "walls", strconv.Itoa(burg.Walls))
	writeParam(&b, "shantytown", strconv.Itoa(burg.Shanty))

	return b.String(), nil
}

func writeParam(b *strings.Builder, key, value string) {
	b.WriteByte('&')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}
