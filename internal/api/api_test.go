package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/graph-vis/internal/api"
	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/internal/infrastructure"
	"github.com/JaimeStill/graph-vis/pkg/storage"
)

func newModule(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			SVG: storage.Config{BasePath: filepath.Join(dir, "svg")},
			PDB: storage.Config{BasePath: filepath.Join(dir, "pdb")},
			GBK: storage.Config{BasePath: filepath.Join(dir, "gbk")},
		},
	}
	cfg.Database.Name = "graph_vis"
	cfg.Database.User = "graph_vis"
	cfg.API.CORS.Enabled = true
	cfg.API.CORS.Origins = []string{"http://localhost:8080"}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	if m.Prefix() != "/api" {
		t.Errorf("Prefix() = %q, want /api", m.Prefix())
	}

	return m.Handler()
}

func TestNewModule_OpenAPI(t *testing.T) {
	h := newModule(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var doc struct {
		Paths      map[string]map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	wantPaths := map[string]string{
		"/api/load_data":         "get",
		"/api/load_data/{id}":    "get",
		"/api/load_data/batch":   "post",
		"/api/load_data/refresh": "post",
		"/api/sequence":          "get",
		"/api/repeat":            "get",
		"/api/svg":               "get",
		"/api/svg/page":          "get",
		"/api/pdb":               "get",
		"/api/gbk":               "get",
	}

	for path, method := range wantPaths {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("spec missing %s %s", method, path)
		}
	}

	for _, name := range []string{"Graph", "Neighborhood", "DomainPair", "Repeat", "SVGPage"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("spec missing schema %s", name)
		}
	}
}

func TestNewModule_NotFound(t *testing.T) {
	h := newModule(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", w.Code)
	}

	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &env)

	if env.Status != "error" || env.Message != api.ErrRouteNotFound.Error() {
		t.Errorf("envelope = %+v", env)
	}
}

func TestNewModule_Middleware(t *testing.T) {
	h := newModule(t)

	req := httptest.NewRequest(http.MethodOptions, "/load_data", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8080" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("request id header not set")
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/svg/?id=P1", nil))

	if w.Code != http.StatusMovedPermanently || w.Header().Get("Location") != "/svg?id=P1" {
		t.Errorf("trailing slash: code = %d, location = %q", w.Code, w.Header().Get("Location"))
	}
}

func TestNewModule_MissingParameters(t *testing.T) {
	h := newModule(t)

	for _, target := range []string{"/sequence", "/repeat", "/svg", "/pdb", "/gbk", "/svg/page"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: code = %d, want 400", target, w.Code)
		}
	}
}
