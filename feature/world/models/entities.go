package models

// Point is a canvas coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Record is the part every entity shares.
type Record interface {
	RecordID() int
	RecordName() string
	IsRemoved() bool
	IsEmpty() bool
}

// Base carries the positional identity and flags of a record.
type Base struct {
	ID      int    `json:"i" yaml:"i"`
	Name    string `json:"name" yaml:"name"`
	Removed bool   `json:"removed,omitempty" yaml:"removed,omitempty"`
	// Empty marks a placeholder element that is not an object or has no fields.
	Empty bool `json:"-" yaml:"-"`
	// Fields keeps the raw record so templates can reach any source field.
	Fields Fields `json:"-" yaml:"-"`
}

func (b *Base) RecordID() int      { return b.ID }
func (b *Base) RecordName() string { return b.Name }
func (b *Base) IsRemoved() bool    { return b.Removed }
func (b *Base) IsEmpty() bool      { return b.Empty }

// Field returns a raw source field.
func (b *Base) Field(key string) any {
	return b.Fields[key]
}

func newBase(f Fields, position int) Base {
	if len(f) == 0 {
		return Base{ID: position, Empty: true}
	}
	id := position
	if f.Has("i") {
		id = f.Int("i")
	}
	return Base{
		ID:      id,
		Name:    f.String("name"),
		Removed: f.Bool("removed"),
		Fields:  f,
	}
}

type Culture struct {
	Base
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

type Religion struct {
	Base
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Deity   string `json:"deity,omitempty" yaml:"deity,omitempty"`
	Culture int    `json:"culture,omitempty" yaml:"culture,omitempty"`
}

type Country struct {
	Base
	FullName  string   `json:"fullName,omitempty" yaml:"full_name,omitempty"`
	Color     string   `json:"color,omitempty" yaml:"color,omitempty"`
	Culture   int      `json:"culture" yaml:"culture"`
	Diplomacy []string `json:"diplomacy,omitempty" yaml:"diplomacy,omitempty"`
	Provinces []int    `json:"provinces,omitempty" yaml:"provinces,omitempty"`
	Pole      *Point   `json:"pole,omitempty" yaml:"pole,omitempty"`
}

type Province struct {
	Base
	FullName string `json:"fullName,omitempty" yaml:"full_name,omitempty"`
	State    int    `json:"state" yaml:"state"`
	// Burg is the representative settlement. 0 means none.
	Burg  int   `json:"burg" yaml:"burg"`
	Burgs []int `json:"burgs,omitempty" yaml:"burgs,omitempty"`
}

type Burg struct {
	Base
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	State   int     `json:"state" yaml:"state"`
	Culture int     `json:"culture" yaml:"culture"`
	// Population is kept as text; exports write it as a number or a grouped string.
	Population string `json:"population" yaml:"population"`
	Size       int    `json:"size" yaml:"size"`
	Coast      int    `json:"coast" yaml:"coast"`
	Citadel    int    `json:"citadel" yaml:"citadel"`
	Plaza      int    `json:"plaza" yaml:"plaza"`
	Temple     int    `json:"temple" yaml:"temple"`
	Walls      int    `json:"walls" yaml:"walls"`
	Shanty     int    `json:"shanty" yaml:"shanty"`
	Capital    int    `json:"capital" yaml:"capital"`
}

type River struct {
	Base
	Mouth  int `json:"mouth" yaml:"mouth"`
	Source int `json:"source" yaml:"source"`
	// MouthPoint is set when the export carries mouth coordinates.
	MouthPoint *Point `json:"mouthPoint,omitempty" yaml:"mouth_point,omitempty"`
}

func NewCulture(f Fields, position int) *Culture {
	return &Culture{Base: newBase(f, position), Color: f.String("color"), Type: f.String("type")}
}

func NewReligion(f Fields, position int) *Religion {
	return &Religion{
		Base:    newBase(f, position),
		Type:    f.String("type"),
		Deity:   f.String("deity"),
		Culture: f.Int("culture"),
	}
}

// NewCountry decodes a state. Diplomacy keeps the raw entries; placeholder
// markers are filtered during resolution.
func NewCountry(f Fields, position int) *Country {
	return &Country{
		Base:      newBase(f, position),
		FullName:  f.String("fullName"),
		Color:     f.String("color"),
		Culture:   f.Int("culture"),
		Diplomacy: f.Strings("diplomacy"),
		Provinces: f.Ints("provinces"),
		Pole:      f.Point("pole"),
	}
}

func NewProvince(f Fields, position int) *Province {
	return &Province{
		Base:     newBase(f, position),
		FullName: f.String("fullName"),
		State:    f.Int("state"),
		Burg:     f.Int("burg"),
		Burgs:    f.Ints("burgs"),
	}
}

// NewBurg decodes a settlement. A missing coast field falls back to the port field.
func NewBurg(f Fields, position int) *Burg {
	b := &Burg{
		Base:       newBase(f, position),
		X:          f.Float("x"),
		Y:          f.Float("y"),
		State:      f.Int("state"),
		Culture:    f.Int("culture"),
		Population: f.String("population"),
		Size:       f.Int("size"),
		Citadel:    f.Flag("citadel"),
		Plaza:      f.Flag("plaza"),
		Temple:     f.Flag("temple"),
		Walls:      f.Flag("walls"),
		Shanty:     f.Flag("shanty"),
		Capital:    f.Flag("capital"),
	}
	if f.Has("coast") {
		b.Coast = f.Flag("coast")
	} else {
		b.Coast = f.Flag("port")
	}
	return b
}

func NewRiver(f Fields, position int) *River {
	r := &River{
		Base:   newBase(f, position),
		Mouth:  f.Int("mouth"),
		Source: f.Int("source"),
	}
	if f.Has("mouthX") || f.Has("mouthY") {
		r.MouthPoint = &Point{X: f.Float("mouthX"), Y: f.Float("mouthY")}
	}
	return r
}
