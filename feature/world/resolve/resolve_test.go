package resolve

import (
	"errors"
	"testing"

	"rwk-afmg/feature/world/classify"
	"rwk-afmg/feature/world/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const world = "x|y|z|SEED1|2000|1500|...\n" +
	`[{"i":0,"name":"Wildlands"},{"i":1,"name":"Elves"},{"i":2,"name":"Dwarves"}]` + "\n" +
	`[{"i":0,"name":"Neutrals","diplomacy":["x"]},{"i":1,"name":"Vostria","culture":1,"diplomacy":["x","Ally"],"provinces":[1,2],"pole":[10,20]},{"i":2,"name":"Gone","removed":true,"culture":2}]` + "\n" +
	`[0,{"i":1,"name":"Upper","state":1,"burg":1,"burgs":[1,2]},{"i":2,"name":"Empty March","state":1,"burg":0,"burgs":[]},{"i":3,"name":"Lost","state":9,"burg":0,"burgs":[3]}]` + "\n" +
	`[{},{"i":1,"name":"Ruvia","x":5,"y":6,"cell":10,"state":1,"culture":1,"population":"12.500","citadel":1},{"i":2,"name":"Kelm","x":7,"y":8,"cell":11,"state":2,"culture":7,"population":3,"citadel":0},{"i":3,"name":"Orphan","cell":12,"state":0,"culture":0,"population":1,"citadel":0}]`

func view(t *testing.T) *View {
	t.Helper()
	store, _, err := classify.Parse(world)
	require.NoError(t, err)
	return PassOne(store)
}

func TestPassOne_Countries(t *testing.T) {
	countries := view(t).Countries(nil)
	require.Len(t, countries, 3)

	assert.True(t, countries[0].Sentinel)
	assert.False(t, countries[0].Culture.Known)

	v := countries[1]
	assert.Equal(t, "Vostria", v.Name)
	assert.Equal(t, Summary{ID: 1, Name: "Elves", Known: true}, v.Culture)
	assert.Equal(t, []string{"Ally"}, v.Diplomacy)
	require.Len(t, v.Provinces, 2)
	assert.Equal(t, "Upper", v.Provinces[0].Name)
	assert.Equal(t, &models.Point{X: 10, Y: 20}, v.Pole)

	assert.True(t, countries[2].IsRemoved())
	assert.Equal(t, "Dwarves", countries[2].Culture.Name, "removed records still resolve")
}

func TestPassOne_Burgs(t *testing.T) {
	burgs := view(t).Burgs(nil, nil)
	require.Len(t, burgs, 4)

	r := burgs[1]
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, "Elves", r.Culture.Name)
	assert.Equal(t, "Vostria", r.Country.Name)
	assert.Equal(t, "Upper", r.Province.Name)

	k := burgs[2]
	assert.False(t, k.Culture.Known, "culture 7 does not exist")
	assert.Equal(t, "unknown", k.Culture.Display())
	assert.Equal(t, "Gone", k.Country.Name)

	o := burgs[3]
	assert.False(t, o.Country.Known, "state 0 is the neutral placeholder")
	assert.Equal(t, "Lost", o.Province.Name)
}

func TestPassOne_RoundTrip(t *testing.T) {
	v := view(t)
	for _, p := range v.Store().Provinces()[1:] {
		for _, burgID := range p.Burgs {
			owner, ok := v.ProvinceOf(burgID)
			require.True(t, ok)
			assert.Equal(t, p.ID, owner)
		}
	}
	assert.Empty(t, v.Warnings())
}

func TestPassOne_DuplicateMembership(t *testing.T) {
	text := "a|b|c|S\n" +
		`[0,{"i":1,"name":"A","state":1,"burgs":[5]},{"i":2,"name":"B","state":1,"burgs":[5]}]`
	store, _, err := classify.Parse(text)
	require.NoError(t, err)

	v := PassOne(store)
	owner, ok := v.ProvinceOf(5)
	require.True(t, ok)
	assert.Equal(t, 1, owner)
	assert.Len(t, v.Warnings(), 1)
}

func TestHandlesAttach(t *testing.T) {
	v := view(t)
	h := NewHandles()
	h.Set(models.KindCultures, 1, "doc-elves")
	h.Set(models.KindCountries, 1, "doc-vostria")
	h.Set(models.KindProvinces, 1, "doc-upper")

	burgs := v.Burgs(h, nil)
	assert.Equal(t, "doc-elves", burgs[1].Culture.Handle)
	assert.Equal(t, "doc-vostria", burgs[1].Country.Handle)
	assert.Equal(t, "doc-upper", burgs[1].Province.Handle)
	assert.Empty(t, burgs[2].Culture.Handle, "unknown references get no handle")

	countries := v.Countries(h)
	assert.Equal(t, "doc-upper", countries[1].Provinces[0].Handle)
	assert.Empty(t, countries[1].Provinces[1].Handle)

	assert.Equal(t, 3, h.Len(models.KindCultures)+h.Len(models.KindCountries)+h.Len(models.KindProvinces))
}

func TestBurgs_URL(t *testing.T) {
	v := view(t)
	var indexes []int
	burgs := v.Burgs(nil, func(index int, b *models.Burg) (string, error) {
		indexes = append(indexes, index)
		if b.Name == "Kelm" {
			return "", errors.New("bad population")
		}
		return "url-" + b.Name, nil
	})

	assert.Equal(t, []int{1, 2, 3}, indexes)
	assert.Empty(t, burgs[0].URL)
	assert.Equal(t, "url-Ruvia", burgs[1].URL)
	assert.Equal(t, "bad population", burgs[2].URLError)
}

func TestPassTwo(t *testing.T) {
	v := view(t)
	h := NewHandles()
	h.Set(models.KindBurgs, 1, "doc-ruvia")
	h.Set(models.KindBurgs, 2, "doc-kelm")
	h.Set(models.KindCountries, 1, "doc-vostria")

	initial := v.Provinces(h)
	require.Len(t, initial, 4)
	assert.Equal(t, []int{1, 2}, initial[1].BurgIDs)
	assert.Nil(t, initial[1].Burgs)
	assert.Nil(t, initial[1].Centroid)

	provinces := PassTwo(v, h)
	require.Len(t, provinces, 4)

	upper := provinces[1]
	assert.Equal(t, "doc-vostria", upper.Country.Handle)
	assert.Equal(t, []Summary{
		{ID: 1, Name: "Ruvia", Handle: "doc-ruvia", Known: true},
		{ID: 2, Name: "Kelm", Handle: "doc-kelm", Known: true},
	}, upper.Burgs)
	assert.Equal(t, &models.Point{X: 5, Y: 6}, upper.Centroid)

	assert.Nil(t, provinces[2].Centroid, "representative burg 0")
	assert.False(t, provinces[3].Country.Known)
	assert.Nil(t, provinces[0].Burgs)
}

func TestPassOne_NoProvinces(t *testing.T) {
	text := "a|b|c|S\n" +
		`[{"i":0,"name":"Neutrals","diplomacy":[]},{"i":1,"name":"Vostria","provinces":[1]}]` + "\n" +
		`[{},{"i":1,"name":"Ruvia","cell":1,"state":1,"population":1,"citadel":0}]`
	store, _, err := classify.Parse(text)
	require.NoError(t, err)

	v := PassOne(store)
	assert.Nil(t, v.Countries(nil)[1].Provinces)
	assert.False(t, v.Burgs(nil, nil)[1].Province.Known)
	assert.Empty(t, PassTwo(v, nil))
	assert.Empty(t, v.Provinces(nil))
}
