package resolve

import (
	"fmt"

	"rwk-afmg/feature/world/graph"
	"rwk-afmg/feature/world/models"
)

// DiplomacyPlaceholder marks a removed country in diplomacy lists.
const DiplomacyPlaceholder = "x"

// NeutralsName is the reserved placeholder country.
const NeutralsName = "Neutrals"

// Country is a state joined with its culture and provinces.
type Country struct {
	*models.Country
	// Index is the position in the source collection.
	Index     int       `json:"index" yaml:"index"`
	Culture   Summary   `json:"culture" yaml:"culture"`
	Diplomacy []string  `json:"diplomacy,omitempty" yaml:"diplomacy,omitempty"`
	Provinces []Summary `json:"provinces,omitempty" yaml:"provinces,omitempty"`
	Sentinel  bool      `json:"sentinel,omitempty" yaml:"sentinel,omitempty"`
}

// Burg is a settlement joined with its culture, country and province.
type Burg struct {
	*models.Burg
	Index    int     `json:"index" yaml:"index"`
	Culture  Summary `json:"culture" yaml:"culture"`
	Country  Summary `json:"country" yaml:"country"`
	Province Summary `json:"province" yaml:"province"`
	URL      string  `json:"url,omitempty" yaml:"url,omitempty"`
	URLError string  `json:"url_error,omitempty" yaml:"url_error,omitempty"`
}

// Province is a sub-state joined with its country. Burgs and Centroid are only
// set by PassTwo.
type Province struct {
	*models.Province
	Index    int           `json:"index" yaml:"index"`
	Country  Summary       `json:"country" yaml:"country"`
	BurgIDs  []int         `json:"burg_ids,omitempty" yaml:"burg_ids,omitempty"`
	Burgs    []Summary     `json:"burgs,omitempty" yaml:"burgs,omitempty"`
	Centroid *models.Point `json:"centroid,omitempty" yaml:"centroid,omitempty"`
}

// URLFunc derives a burg URL from its index in the full collection.
type URLFunc func(index int, burg *models.Burg) (string, error)

// View is the result of the first resolution pass over a store.
// It holds index-based joins only; handles are attached when a collection is read.
type View struct {
	store        *graph.Store
	burgProvince map[int]int
	countries    []Country
	burgs        []Burg
	provinces    []Province
	warnings     []string
}

// PassOne resolves the acyclic references: culture on countries and burgs,
// country on provinces and burgs, and the burg to province inverse index.
func PassOne(store *graph.Store) *View {
	v := &View{
		store:        store,
		burgProvince: make(map[int]int),
	}

	for pos, p := range store.Provinces() {
		if pos == 0 || p.IsEmpty() {
			continue
		}
		for _, burgID := range p.Burgs {
			if owner, dup := v.burgProvince[burgID]; dup && owner != p.ID {
				v.warnings = append(v.warnings, fmt.Sprintf("burg %d is listed by provinces %d and %d; keeping %d", burgID, owner, p.ID, owner))
				continue
			}
			v.burgProvince[burgID] = p.ID
		}
	}

	for pos, c := range store.Countries() {
		rc := Country{Country: c, Index: pos}
		rc.Sentinel = pos == 0 || c.Name == NeutralsName
		if !c.IsEmpty() && !rc.Sentinel {
			rc.Culture = v.culture(c.Culture)
			rc.Diplomacy = filterDiplomacy(c.Diplomacy)
			if store.Has(models.KindProvinces) {
				rc.Provinces = make([]Summary, 0, len(c.Provinces))
				for _, id := range c.Provinces {
					rc.Provinces = append(rc.Provinces, v.province(id))
				}
			}
		}
		v.countries = append(v.countries, rc)
	}

	for pos, b := range store.Burgs() {
		rb := Burg{Burg: b, Index: pos}
		if pos != 0 && !b.IsEmpty() {
			rb.Culture = v.culture(b.Culture)
			rb.Country = v.country(b.State)
			if pid, ok := v.burgProvince[b.ID]; ok {
				rb.Province = v.province(pid)
			}
		}
		v.burgs = append(v.burgs, rb)
	}

	for pos, p := range store.Provinces() {
		rp := Province{Province: p, Index: pos}
		if pos != 0 && !p.IsEmpty() {
			rp.Country = v.country(p.State)
			rp.BurgIDs = p.Burgs
		}
		v.provinces = append(v.provinces, rp)
	}

	return v
}

// PassTwo re-derives provinces once burgs carry handles: the owning country is
// attached and every member burg ID is replaced by its summary. Provinces whose
// representative burg is 0 get no centroid.
func PassTwo(v *View, handles *Handles) []Province {
	out := make([]Province, 0, len(v.provinces))
	for _, p := range v.provinces {
		rp := p
		rp.Country = handles.attach(models.KindCountries, p.Country)
		if p.Index != 0 && !p.IsEmpty() {
			rp.Burgs = make([]Summary, 0, len(p.BurgIDs))
			for _, id := range p.BurgIDs {
				rp.Burgs = append(rp.Burgs, handles.attach(models.KindBurgs, v.burg(id)))
			}
			if p.Province.Burg != 0 {
				if center, ok := v.store.Burg(p.Province.Burg); ok {
					rp.Centroid = &models.Point{X: center.X, Y: center.Y}
				}
			}
		}
		out = append(out, rp)
	}
	return out
}

// Store returns the store the view was built from.
func (v *View) Store() *graph.Store {
	return v.store
}

// Warnings returns inconsistencies found while building the inverse index.
func (v *View) Warnings() []string {
	return v.warnings
}

// ProvinceOf returns the province listing burgID.
func (v *View) ProvinceOf(burgID int) (int, bool) {
	id, ok := v.burgProvince[burgID]
	return id, ok
}

// Cultures returns the culture collection. Cultures reference nothing.
func (v *View) Cultures() []*models.Culture {
	return v.store.Cultures()
}

// Countries returns resolved countries with culture and province handles attached.
func (v *View) Countries(handles *Handles) []Country {
	out := make([]Country, 0, len(v.countries))
	for _, c := range v.countries {
		rc := c
		rc.Culture = handles.attach(models.KindCultures, c.Culture)
		if c.Provinces != nil {
			rc.Provinces = make([]Summary, 0, len(c.Provinces))
			for _, p := range c.Provinces {
				rc.Provinces = append(rc.Provinces, handles.attach(models.KindProvinces, p))
			}
		}
		out = append(out, rc)
	}
	return out
}

// Burgs returns resolved burgs with handles attached. When urlFn is set every
// non-placeholder burg gets a URL; a failure is recorded on that burg only.
func (v *View) Burgs(handles *Handles, urlFn URLFunc) []Burg {
	out := make([]Burg, 0, len(v.burgs))
	for _, b := range v.burgs {
		rb := b
		rb.Culture = handles.attach(models.KindCultures, b.Culture)
		rb.Country = handles.attach(models.KindCountries, b.Country)
		rb.Province = handles.attach(models.KindProvinces, b.Province)
		if urlFn != nil && b.Index != 0 && !b.IsEmpty() {
			url, err := urlFn(b.Index, b.Burg)
			if err != nil {
				rb.URLError = err.Error()
			} else {
				rb.URL = url
			}
		}
		out = append(out, rb)
	}
	return out
}

// Provinces returns the first-pass provinces with the country handle attached.
// Member burgs are IDs only.
func (v *View) Provinces(handles *Handles) []Province {
	out := make([]Province, 0, len(v.provinces))
	for _, p := range v.provinces {
		rp := p
		rp.Country = handles.attach(models.KindCountries, p.Country)
		out = append(out, rp)
	}
	return out
}

func (v *View) culture(id int) Summary {
	if c, ok := v.store.Culture(id); ok {
		return Summary{ID: id, Name: c.Name, Known: true}
	}
	return Summary{ID: id}
}

func (v *View) country(id int) Summary {
	if c, ok := v.store.Country(id); ok {
		return Summary{ID: id, Name: c.Name, Known: true}
	}
	return Summary{ID: id}
}

func (v *View) province(id int) Summary {
	if p, ok := v.store.Province(id); ok {
		return Summary{ID: id, Name: p.Name, Known: true}
	}
	return Summary{ID: id}
}

func (v *View) burg(id int) Summary {
	if b, ok := v.store.Burg(id); ok {
		return Summary{ID: id, Name: b.Name, Known: true}
	}
	return Summary{ID: id}
}

func filterDiplomacy(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		if d != DiplomacyPlaceholder {
			out = append(out, d)
		}
	}
	return out
}
