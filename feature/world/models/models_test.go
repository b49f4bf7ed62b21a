package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raws(t *testing.T, src string) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(src), &out))
	return out
}

func TestKind(t *testing.T) {
	assert.Equal(t, "burgs", KindBurgs.String())
	assert.Equal(t, "Burgs", KindBurgs.Collection())
	assert.Equal(t, KindProvinces, ParseKind("provinces"))
	assert.Equal(t, KindCountries, ParseKind("Countries"))
	assert.Equal(t, KindUnrecognized, ParseKind("biomes"))
	assert.True(t, KindCultures.HasSentinel())
	assert.False(t, KindRivers.HasSentinel())
	assert.Empty(t, KindUnrecognized.Collection())
}

func TestDecodeCollection_Burgs(t *testing.T) {
	records := DecodeCollection(KindBurgs, raws(t, `[{}, {"i":1,"name":"Ruvia","x":10.5,"y":20,"state":1,"culture":1,"population":"12.500","size":"3","citadel":1,"plaza":true,"temple":0,"walls":"1","shanty":false,"port":2}]`))
	require.Len(t, records, 2)

	assert.True(t, records[0].IsEmpty())
	assert.Equal(t, 0, records[0].RecordID())

	b := records[1].(*Burg)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "Ruvia", b.Name)
	assert.Equal(t, 10.5, b.X)
	assert.Equal(t, "12.500", b.Population)
	assert.Equal(t, 3, b.Size)
	assert.Equal(t, 1, b.Citadel)
	assert.Equal(t, 1, b.Plaza)
	assert.Equal(t, 0, b.Temple)
	assert.Equal(t, 1, b.Walls)
	assert.Equal(t, 0, b.Shanty)
	assert.Equal(t, 1, b.Coast, "port fallback")
}

func TestDecodeCollection_NumericPopulation(t *testing.T) {
	records := DecodeCollection(KindBurgs, raws(t, `[0, {"i":1,"name":"Kelm","population":12.5,"citadel":0,"coast":0,"port":1}]`))
	b := records[1].(*Burg)
	assert.Equal(t, "12.5", b.Population)
	assert.Equal(t, 0, b.Coast, "explicit coast wins over port")
	assert.True(t, records[0].IsEmpty())
}

func TestDecodeCollection_Countries(t *testing.T) {
	records := DecodeCollection(KindCountries, raws(t, `[{"i":0,"name":"Neutrals"},{"i":1,"name":"Vostria","culture":1,"diplomacy":["x","Ally"],"provinces":[1,2],"pole":[100.5,200],"removed":false}]`))
	c := records[1].(*Country)
	assert.Equal(t, []string{"x", "Ally"}, c.Diplomacy)
	assert.Equal(t, []int{1, 2}, c.Provinces)
	assert.Equal(t, &Point{X: 100.5, Y: 200}, c.Pole)
	assert.False(t, c.IsRemoved())
	assert.Equal(t, "Vostria", c.Field("name"))
}

func TestDecodeCollection_PositionFallback(t *testing.T) {
	records := DecodeCollection(KindCultures, raws(t, `[{"name":"Wildlands"},{"name":"Elves"}]`))
	assert.Equal(t, 0, records[0].RecordID())
	assert.Equal(t, 1, records[1].RecordID())
	assert.False(t, records[0].IsEmpty())
}

func TestDecodeCollection_Unrecognized(t *testing.T) {
	assert.Nil(t, DecodeCollection(KindUnrecognized, raws(t, `[{}]`)))
}

func TestFields(t *testing.T) {
	f := DecodeFields(json.RawMessage(`{"a":"7","b":[1,"2"],"p":[1],"flag":"true"}`))
	assert.Equal(t, 7, f.Int("a"))
	assert.Equal(t, []int{1, 2}, f.Ints("b"))
	assert.Nil(t, f.Ints("a"))
	assert.Nil(t, f.Point("p"))
	assert.Equal(t, 1, f.Flag("flag"))
	assert.Nil(t, DecodeFields(json.RawMessage(`0`)))
}
