package classify

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"rwk-afmg/feature/world/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elems(t *testing.T, src string) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(src), &out))
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want models.Kind
	}{
		{"Provinces", `[0,{"i":1,"state":1,"burg":1}]`, models.KindProvinces},
		{"ProvinceWithCellIsNotProvince", `[{},{"state":1,"cell":5,"population":1,"citadel":0}]`, models.KindBurgs},
		{"Burgs", `[{},{"population":2.1,"citadel":1}]`, models.KindBurgs},
		{"BurgsNeedCitadel", `[{},{"population":2.1}]`, models.KindUnrecognized},
		{"Countries", `[{"name":"Neutrals","diplomacy":[]},{"name":"Vostria"}]`, models.KindCountries},
		{"Religions", `[{"name":"No religion"},{"name":"Sun"}]`, models.KindReligions},
		{"Cultures", `[{"name":"Wildlands"},{"name":"Elves"}]`, models.KindCultures},
		{"Rivers", `[{"i":1,"mouth":3}]`, models.KindRivers},
		{"ProvincesBeatCountries", `[{"diplomacy":[]},{"state":1}]`, models.KindProvinces},
		{"CountriesBeatCultures", `[{"name":"Wildlands","diplomacy":[]}]`, models.KindCountries},
		{"NonObjectSecond", `[{"name":"Wildlands"},5]`, models.KindCultures},
		{"Numbers", `[1,2,3]`, models.KindUnrecognized},
		{"Empty", `[]`, models.KindUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(elems(t, tt.line)))
		})
	}
}

func TestParseHeader(t *testing.T) {
	h := ParseHeader("1.4|map|x|SEED1|2000|1500|extra")
	assert.Equal(t, "SEED1", h.Seed)
	require.NotNil(t, h.Width)
	require.NotNil(t, h.Height)
	assert.Equal(t, 2000, *h.Width)
	assert.Equal(t, 1500, *h.Height)

	partial := ParseHeader("a|b|c|SEED2")
	assert.Equal(t, "SEED2", partial.Seed)
	assert.Nil(t, partial.Width)
	assert.Nil(t, partial.Height)

	none := ParseHeader("garbage")
	assert.False(t, none.HasSeed())

	bad := ParseHeader("a|b|c||wide|1500")
	assert.False(t, bad.HasSeed())
	assert.Nil(t, bad.Width)
	assert.Equal(t, 1500, *bad.Height)
}

const sample = "x|y|z|SEED1|2000|1500|...\r\n" +
	"not json at all\n" +
	`[{"i":0,"name":"Wildlands"},{"i":1,"name":"Elves"}]` + "\n" +
	"<svg></svg>\n" +
	`[{"i":0,"name":"Neutrals","diplomacy":["x"]},{"i":1,"name":"Vostria","culture":1,"diplomacy":["x","x"]}]` + "\n" +
	`[{},{"i":1,"name":"Ruvia","state":1,"culture":1,"population":"12.500","citadel":1,"cell":40}]` + "\n" +
	`[{"i":0,"name":"No religion"}]` + "\n" +
	`{"an":"object"}` + "\n" +
	"1,2,3,4\n"

func TestParse(t *testing.T) {
	store, report, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, "SEED1", store.Header().Seed)
	assert.Equal(t, 2000, *store.Header().Width)
	assert.Equal(t, 1500, *report.Header.Height)

	assert.True(t, store.Has(models.KindCultures))
	assert.True(t, store.Has(models.KindCountries))
	assert.True(t, store.Has(models.KindBurgs))
	assert.True(t, store.Has(models.KindReligions))
	assert.False(t, store.Has(models.KindProvinces))
	assert.False(t, store.Has(models.KindRivers))

	assert.Equal(t, map[string]int{"cultures": 2, "countries": 2, "burgs": 2, "religions": 1}, report.Counts)
	assert.Equal(t, 5, report.Ignored)
	assert.Empty(t, report.Duplicates)
}

func TestParse_OrderIndependent(t *testing.T) {
	lines := strings.Split(sample, "\n")
	header, body := lines[0], lines[1:]

	want, _, err := Parse(sample)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), body...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, _, err := Parse(header + "\n" + strings.Join(shuffled, "\n"))
		require.NoError(t, err)

		for _, kind := range models.Kinds {
			assert.Equal(t, want.All(kind), got.All(kind), kind.String())
		}
	}
}

func TestParse_DuplicateLastWins(t *testing.T) {
	text := "a|b|c|S|1|1\n" +
		`[{"name":"Wildlands"},{"name":"Elves"}]` + "\n" +
		`[{"name":"Wildlands"},{"name":"Dwarves"},{"name":"Orcs"}]`

	store, report, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"cultures"}, report.Duplicates)
	assert.Len(t, store.Cultures(), 3)
	assert.Equal(t, "Dwarves", store.Cultures()[1].Name)
}

func TestParse_Empty(t *testing.T) {
	_, _, err := Parse("  \n ")
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestParse_HeaderOnly(t *testing.T) {
	store, report, err := Parse("a|b|c|SEED")
	require.NoError(t, err)
	assert.Equal(t, "SEED", store.Header().Seed)
	assert.Zero(t, report.Lines)
	for _, kind := range models.Kinds {
		assert.False(t, store.Has(kind))
	}
}
