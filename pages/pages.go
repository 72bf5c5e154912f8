// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	Index   = "index"
	Detail  = "detail"
	Results = "results"
)

var funcs = template.FuncMap{
	"humanTime": humanize.Time,
	"comma":     humanize.Comma,
	"pluralize": func(n int64, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}

type IndexData struct {
	Questions []models.Question
	Now       time.Time
}

type DetailData struct {
	models.QuestionWithChoices
	ErrorMessage string
}

type ResultsData struct {
	models.QuestionWithChoices
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Index, Detail, Results} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// MustNewRenderer is NewRenderer for package-level setup; it panics on a bad template.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes a page with the given status. Output is buffered, so a
// template error results in a 500 with nothing else written.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		slog.Error("unknown page", "page", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	buf.WriteTo(w)
}
