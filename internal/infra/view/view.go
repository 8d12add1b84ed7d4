// Package view renders the back-office HTML pages. Templates are embedded
// in the binary and addressed by their path below views/ without the
// extension, for example "articles/show".
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

//go:embed views
var files embed.FS

//go:embed static
var static embed.FS

const (
	layoutFile = "views/layouts/base.html"
	extension  = ".html"
)

// ErrTemplateNotFound is returned by Render for an unknown template name.
var ErrTemplateNotFound = errors.New("template not found")

// Engine holds the parsed page templates. It is safe for concurrent use.
type Engine struct {
	pages map[string]*template.Template
}

// New parses every page under views/ against the base layout.
func New() (*Engine, error) {
	return newEngine(files)
}

func newEngine(fsys fs.FS) (*Engine, error) {
	layout, err := template.New("base").Funcs(funcs).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	e := &Engine{pages: map[string]*template.Template{}}
	err = fs.WalkDir(fsys, "views", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == layoutFile || path.Ext(p) != extension {
			return nil
		}
		if strings.HasPrefix(p, "views/layouts/") {
			return nil
		}

		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(fsys, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, "views/"), extension)
		e.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Render executes the named page with data.
func (e *Engine) Render(name string, data any) (string, error) {
	page, ok := e.pages[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "base", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names lists the registered pages.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.pages))
	for name := range e.pages {
		names = append(names, name)
	}
	return names
}

// Static returns the embedded assets rooted at static/, for example
// "css/app.css".
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}
