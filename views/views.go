// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/session"
)

//go:embed templates
var templateFS embed.FS

// Page is what every template receives
type Page struct {
	Flashes []models.Flash
	Data    any
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"plural": func(n int, singular, plural string) string {
		return english.Plural(n, singular, plural)
	},
	"contains": func(ids []int64, id int64) bool {
		return slices.Contains(ids, id)
	},
}

// New parses every page together with the layout and partials
func New() (*Renderer, error) {
	rd := &Renderer{pages: make(map[string]*template.Template)}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		if path == "templates/layout.html" || strings.HasPrefix(path, "templates/partials/") {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			path,
		)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		rd.pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rd, nil
}

// Has reports whether a page exists
func (rd *Renderer) Has(name string) bool {
	_, ok := rd.pages[name]
	return ok
}

// Render writes the page with the session's pending flashes. The page is
// rendered to a buffer first so a template error never sends half a page.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	tmpl, ok := rd.pages[name]
	if !ok {
		slog.Error("unknown template", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess := session.FromContext(r.Context())
	page := Page{
		Flashes: sess.PopFlashes(),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}
