package server

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// Page template names.
const (
	PageIndex = "index"
	PageLogin = "login"
)

// Renderer executes the named page templates.
//
// All "*.html" files at the root of the filesystem are parsed into a single
// template set, so pages can share partials defined in any file.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the templates in fsys.
//
// Returns an error if parsing fails or if the "index" or "login" template is
// not defined.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("pages").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	for _, name := range []string{PageIndex, PageLogin} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template called name with data and writes the result
// to w.
//
// Partial output may reach w when execution fails; callers that need an
// all-or-nothing response should render into a buffer.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
