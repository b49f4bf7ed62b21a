package render

import (
	"os"
	"path/filepath"
	"testing"

	"rwk-afmg/feature/world/models"
	"rwk-afmg/feature/world/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Culture(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	out, err := r.Render(TemplateCulture, &models.Culture{Base: models.Base{ID: 1, Name: "Elves <3"}, Type: "Highland"}, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Elves &lt;3</h1>")
	assert.Contains(t, out, "Highland")
}

func TestRender_Country(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	country := resolve.Country{
		Country:   &models.Country{Base: models.Base{ID: 1, Name: "Vostria"}},
		Culture:   resolve.Summary{ID: 1, Name: "Elves", Handle: "doc-1", Known: true},
		Diplomacy: []string{"Ally"},
		Provinces: []resolve.Summary{{ID: 3}},
	}
	kharn := resolve.Country{Country: &models.Country{Base: models.Base{ID: 2, Name: "Kharn"}}}
	neutrals := resolve.Country{Country: &models.Country{Base: models.Base{ID: 0, Name: "Neutrals"}}, Sentinel: true}
	extras := map[string]any{"Countries": []resolve.Country{neutrals, country, kharn}}

	out, err := r.Render(TemplateCountry, country, extras)
	require.NoError(t, err)
	assert.Contains(t, out, `data-handle="doc-1">Elves</a>`)
	assert.Contains(t, out, "<li>unknown</li>")
	assert.Contains(t, out, "<li>Ally</li>")
	assert.Contains(t, out, "<li>Kharn</li>")
	assert.NotContains(t, out, "<li>Vostria</li>", "a country is not listed among the others")
	assert.NotContains(t, out, "<li>Neutrals</li>")
}

func TestRender_Burg(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	burg := resolve.Burg{
		Burg:    &models.Burg{Base: models.Base{ID: 1, Name: "Ruvia"}, Population: "12.500", Walls: 1},
		Country: resolve.Summary{ID: 1, Name: "Vostria", Known: true},
		URL:     "http://fantasycities.watabou.ru/?random=0&name=Ruvia",
	}

	out, err := r.Render(TemplateBurg, burg, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Vostria")
	assert.Contains(t, out, "<li>Walls</li>")
	assert.NotContains(t, out, "<li>Citadel</li>")
	assert.Contains(t, out, `href="http://fantasycities.watabou.ru/?random=0&amp;name=Ruvia"`)
}

func TestRender_Province(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	province := resolve.Province{
		Province: &models.Province{Base: models.Base{ID: 1, Name: "Upper"}},
		BurgIDs:  []int{1, 2},
	}
	out, err := r.Render(TemplateProvince, province, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Burgs:</strong> 2")

	province.Burgs = []resolve.Summary{{ID: 1, Name: "Ruvia", Handle: "b1", Known: true}}
	province.Centroid = &models.Point{X: 5, Y: 6}
	out, err = r.Render(TemplateProvince, province, nil)
	require.NoError(t, err)
	assert.Contains(t, out, `data-handle="b1">Ruvia</a>`)
	assert.Contains(t, out, "5, 6")
}

func TestRender_Unknown(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.Render("biome", nil, nil)
	assert.Error(t, err)
}

func TestNewFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{TemplateCulture, TemplateCountry, TemplateProvince, TemplateBurg} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".gohtml"), []byte("<b>{{.Iter.Name}}</b>"), 0o600))
	}

	r, err := NewFromDir(dir)
	require.NoError(t, err)

	out, err := r.Render(TemplateBurg, &models.Burg{Base: models.Base{Name: "Ruvia"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "<b>Ruvia</b>", out)

	_, err = NewFromDir(t.TempDir())
	assert.Error(t, err)
}
