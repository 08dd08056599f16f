// Package app serves the network viewer: three server-rendered views backed
// by the graph API, plus their embedded script and stylesheet.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/module"
	"github.com/JaimeStill/graph-vis/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"site.webmanifest",
	"robots.txt",
}

var views = []web.ViewDef{
	{Route: "/", Name: "HomePage", Template: "home.html", Title: "Home", Bundle: "app"},
	{Route: "/network", Name: "GlobalNetwork", Template: "global-network.html", Title: "Global Network", Bundle: "app"},
	{Route: "/network/info", Name: "SubNetwork", Template: "sub-network.html", Title: "Sub Network", Bundle: "app"},
}

var notFoundView = web.ViewDef{Name: "NotFound", Template: "404.html", Title: "Not Found", Bundle: "app"}

// ClientSettings configures the browser side API client. APIBase is the
// URL prefix of the graph API; Timeout is the per-request limit in
// milliseconds.
type ClientSettings struct {
	APIBase string `json:"apiBase"`
	Timeout int64  `json:"timeout"`
}

// Views returns a copy of the route table.
func Views() []web.ViewDef {
	out := make([]web.ViewDef, len(views))
	copy(out, views)
	return out
}

// NewModule parses every view once and builds the app module mounted at basePath.
func NewModule(basePath string, client ClientSettings) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		append(Views(), notFoundView),
	)
	if err != nil {
		return nil, err
	}
	ts.WithData(client)

	return module.New(basePath, buildRouter(ts)), nil
}

func buildRouter(ts *web.TemplateSet) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	for _, view := range views {
		r.HandleFunc("GET "+view.Pattern(), ts.PageHandler(layout, view))
	}

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
