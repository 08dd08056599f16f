package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/graph-vis/pkg/web"
)

var staticFS = fstest.MapFS{
	"static/app.js":   {Data: []byte(`console.log("graph")`)},
	"static/test.txt": {Data: []byte("test content")},
}

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "static", "/dist/")

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/dist/app.js", http.StatusOK},
		{"/dist/nonexistent.js", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestPublicFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.PublicFile(staticFS, "static", "test.txt")(w, httptest.NewRequest(http.MethodGet, "/test.txt", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test content") {
		t.Error("body missing file content")
	}

	w = httptest.NewRecorder()
	web.PublicFile(staticFS, "static", "missing.txt")(w, httptest.NewRequest(http.MethodGet, "/missing.txt", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "static", "test.txt", "app.js")

	if len(routes) != 2 {
		t.Fatalf("len(routes) = %d, want 2", len(routes))
	}
	for i, want := range []string{"/test.txt", "/app.js"} {
		if routes[i].Method != "GET" {
			t.Errorf("route %d: Method = %q, want GET", i, routes[i].Method)
		}
		if routes[i].Pattern != want {
			t.Errorf("route %d: Pattern = %q, want %q", i, routes[i].Pattern, want)
		}
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.ServeEmbeddedFile([]byte("hello world"), "text/plain")(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := w.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if w.Body.String() != "hello world" {
		t.Errorf("body = %q", w.Body.String())
	}
}
