// Package web serves server-rendered views from pre-parsed templates.
// Views are declared as a static table of ViewDef entries; each entry is parsed
// once at startup so a missing or broken template fails construction instead
// of the first request.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef binds a route to a named view template.
type ViewDef struct {
	Route    string
	Name     string
	Template string
	Title    string
	Bundle   string
}

// Pattern returns the ServeMux pattern for the route.
// The root route matches only itself rather than acting as a subtree.
func (v ViewDef) Pattern() string {
	if v.Route == "" || v.Route == "/" {
		return "/{$}"
	}
	return v.Route
}

// ViewData is passed to templates during rendering.
// BasePath enables portable URL generation via {{ .BasePath }}.
type ViewData struct {
	Name     string
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// TemplateSet holds one parsed template tree per view.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	data     any
}

// NewTemplateSet parses the layouts once and clones them for each view template
// found under viewSubdir.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// WithData attaches data exposed to every rendered view as {{ .Data }}.
func (ts *TemplateSet) WithData(data any) *TemplateSet {
	ts.data = data
	return ts
}

// ErrorHandler renders the given view with status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.viewData(view)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := ts.execute(w, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns a handler rendering view inside layout.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, layout, view.Template, ts.viewData(view)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes layout for the named view template and sets an HTML content type.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, viewTemplate string, data ViewData) error {
	if _, ok := ts.views[viewTemplate]; !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return ts.execute(w, layout, viewTemplate, data)
}

func (ts *TemplateSet) execute(w http.ResponseWriter, layout, viewTemplate string, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	return t.ExecuteTemplate(w, layout, data)
}

func (ts *TemplateSet) viewData(view ViewDef) ViewData {
	return ViewData{
		Name:     view.Name,
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		Data:     ts.data,
	}
}
