package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

//go:embed templates/*.gohtml
var embedded embed.FS

const (
	TemplateCulture  = "culture"
	TemplateCountry  = "country"
	TemplateProvince = "province"
	TemplateBurg     = "burg"
)

// Context is the data every template receives.
type Context struct {
	// Iter is the entity being rendered.
	Iter any
	// Extras is collection-wide context, such as the full country list.
	Extras any
}

// Renderer turns resolved entities into document bodies.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return load(sub)
}

// NewFromDir parses templates from a directory. Every template name must be present.
func NewFromDir(dir string) (*Renderer, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, name := range []string{TemplateCulture, TemplateCountry, TemplateProvince, TemplateBurg} {
		t, err := template.ParseFS(fsys, name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render executes the named template. Safe for concurrent use.
func (r *Renderer) Render(name string, iter, extras any) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, Context{Iter: iter, Extras: extras}); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
