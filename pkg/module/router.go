package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment
// and falls back to native handlers for everything else.
type Router struct {
	modules map[string]http.Handler
	native  *http.ServeMux
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]http.Handler),
		native:  http.NewServeMux(),
	}
}

// Mount registers m under its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m.Handler()
}

// HandleNative registers a handler on the root mux, outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}

	prefix, rest := splitPrefix(path)
	if handler, ok := r.modules[prefix]; ok {
		req2 := req.Clone(req.Context())
		req2.URL.Path = rest
		req2.URL.RawPath = ""
		handler.ServeHTTP(w, req2)
		return
	}

	r.native.ServeHTTP(w, req)
}

func splitPrefix(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "/", "/"
	}

	segment, rest, found := strings.Cut(trimmed, "/")
	if !found {
		return "/" + segment, "/"
	}
	return "/" + segment, "/" + rest
}
