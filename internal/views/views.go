package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.tmpl templates/partials/*.tmpl
var files embed.FS

var funcMap = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Renderer holds the parsed template set. All pages and partials are parsed
// once at startup; a missing template is a programming error surfaced then,
// not at request time.
type Renderer struct {
	t *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("portal").Funcs(funcMap).ParseFS(files,
		"templates/*.tmpl",
		"templates/partials/*.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// Render executes the named page template.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.t.ExecuteTemplate(w, name, data)
}
