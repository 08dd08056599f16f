package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/graph-vis/pkg/openapi"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/load_data",
		Tags:   []string{"Network"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Graph"}},
			{Method: "POST", Pattern: "/batch", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Batch", Tags: []string{"Batch"}}},
			{Method: "GET", Pattern: "/hidden", Handler: noop},
		},
		Children: []routes.Group{
			{
				Prefix: "/nested",
				Routes: []routes.Route{
					{Method: "DELETE", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Nested"}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Node": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	graph := spec.Paths["/api/load_data"]
	if graph == nil || graph.Get == nil || graph.Get.Summary != "Graph" {
		t.Fatal("GET /api/load_data not added")
	}

	if len(graph.Get.Tags) != 1 || graph.Get.Tags[0] != "Network" {
		t.Errorf("Tags = %v, want inherited [Network]", graph.Get.Tags)
	}

	batch := spec.Paths["/api/load_data/batch"]
	if batch == nil || batch.Post == nil || batch.Post.Tags[0] != "Batch" {
		t.Error("explicit tags should be preserved")
	}

	if spec.Paths["/api/load_data/hidden"] != nil {
		t.Error("routes without OpenAPI should not be documented")
	}

	if nested := spec.Paths["/api/load_data/nested"]; nested == nil || nested.Delete == nil {
		t.Error("child group path not added")
	}

	if spec.Components.Schemas["Node"] == nil {
		t.Error("group schema not added to components")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	write := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}
	}

	network := routes.Group{
		Prefix: "/load_data",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("graph"), OpenAPI: &openapi.Operation{}},
			{Method: "GET", Pattern: "/{id}", Handler: write("node"), OpenAPI: &openapi.Operation{}},
		},
	}

	proteins := routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/sequence", Handler: write("sequence"), OpenAPI: &openapi.Operation{}},
		},
	}

	routes.Register(mux, "/api", spec, network, proteins)

	tests := []struct {
		path string
		want string
	}{
		{"/load_data", "graph"},
		{"/load_data/P1", "node"},
		{"/sequence", "sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	for _, path := range []string{"/api/load_data", "/api/load_data/{id}", "/api/sequence"} {
		if spec.Paths[path] == nil {
			t.Errorf("spec path %s not added", path)
		}
	}
}
