package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/ejacobg/moviesapp/internal/data"
)

//go:embed "templates"
var templateFS embed.FS

// ErrMissingElement is returned when a template set lacks a required element.
var ErrMissingElement = errors.New("missing page element")

// RequiredElements lists the templates every page set must define.
var RequiredElements = []string{"page", "search-form", "year-form", "genre-form", "table"}

// PageData is everything the page template needs for one render.
type PageData struct {
	Rows        []Row
	Years       []YearControl
	Genres      []GenreControl
	SearchValue string
	Trigger     string
	Matched     int
	Errors      map[string]string
}

type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("movies").Funcs(template.FuncMap{
		"year": func(y data.Year) string { return y.String() },
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return newRenderer(tmpl)
}

func newRenderer(tmpl *template.Template) (*Renderer, error) {
	for _, name := range RequiredElements {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingElement, name)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the full page to w. Nothing is written if rendering fails.
func (r *Renderer) Page(w io.Writer, pd PageData) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, "page", pd); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
