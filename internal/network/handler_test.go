package network_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/graph-vis/internal/network"
	"github.com/JaimeStill/graph-vis/pkg/openapi"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

type fakeSystem struct {
	graph     *network.Graph
	hoods     map[string]*network.Neighborhood
	domains   map[string][]network.DomainPair
	gotIDs    []string
	graphErr    error
	graphHits   int
	invalidated int
}

func (f *fakeSystem) Graph(ctx context.Context) (*network.Graph, error) {
	f.graphHits++
	return f.graph, f.graphErr
}

func (f *fakeSystem) Neighborhood(ctx context.Context, id string) (*network.Neighborhood, error) {
	if h, ok := f.hoods[id]; ok {
		return h, nil
	}
	return nil, network.ErrNotFound
}

func (f *fakeSystem) Domains(ctx context.Context, ids []string) (map[string][]network.DomainPair, error) {
	f.gotIDs = ids
	if len(ids) == 0 {
		return nil, network.ErrMissingIDs
	}
	return f.domains, nil
}

func (f *fakeSystem) ProteinIDs(ctx context.Context, id string) ([]string, error) {
	return nil, nil
}

func (f *fakeSystem) Invalidate() {
	f.invalidated++
}

func newMux(sys network.System) *http.ServeMux {
	mux := http.NewServeMux()
	handler := network.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)))
	routes.Register(mux, "/api", openapi.NewSpec("t", "v"), handler.Routes())
	return mux
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func serve(t *testing.T, mux http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, reader))

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestHandler_Graph(t *testing.T) {
	sys := &fakeSystem{
		graph: &network.Graph{
			Nodes: []network.Node{{ID: "n1", Name: "PF00001", X: 1.5, Y: -2}},
			Edges: []network.Edge{{ID: "e1", Source: "n1", Target: "n1"}},
		},
	}

	code, env := serve(t, newMux(sys), http.MethodGet, "/load_data", "")

	if code != http.StatusOK || env.Status != "success" {
		t.Fatalf("code = %d, status = %q", code, env.Status)
	}

	var graph network.Graph
	json.Unmarshal(env.Data, &graph)

	if len(graph.Nodes) != 1 || graph.Nodes[0].X != 1.5 || len(graph.Edges) != 1 {
		t.Errorf("graph = %+v", graph)
	}
}

func TestHandler_GraphError(t *testing.T) {
	sys := &fakeSystem{graphErr: errors.New("connection refused")}

	code, env := serve(t, newMux(sys), http.MethodGet, "/load_data", "")

	if code != http.StatusInternalServerError || env.Status != "error" {
		t.Errorf("code = %d, status = %q", code, env.Status)
	}
}

func TestHandler_Neighborhood(t *testing.T) {
	sys := &fakeSystem{
		hoods: map[string]*network.Neighborhood{
			"n1": {Node: network.Node{ID: "n1"}, Edges: []network.Edge{}, Neighbors: []network.Node{}},
		},
	}
	mux := newMux(sys)

	code, env := serve(t, mux, http.MethodGet, "/load_data/n1", "")
	if code != http.StatusOK || env.Status != "success" {
		t.Errorf("found: code = %d, status = %q", code, env.Status)
	}

	code, env = serve(t, mux, http.MethodGet, "/load_data/missing", "")
	if code != http.StatusNotFound || env.Message != network.ErrNotFound.Error() {
		t.Errorf("missing: code = %d, message = %q", code, env.Message)
	}
}

func TestHandler_Domains(t *testing.T) {
	sys := &fakeSystem{
		domains: map[string][]network.DomainPair{
			"n1": {{ProteinID: "P1", Source: "PF1", Target: "PF2"}},
			"n2": {},
		},
	}
	mux := newMux(sys)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"valid", `{"ids":["n1"]}`, http.StatusOK},
		{"extra keys", `{"ids":["n1"],"source":"graph"}`, http.StatusOK},
		{"empty ids", `{"ids":[]}`, http.StatusBadRequest},
		{"missing body", "", http.StatusBadRequest},
		{"malformed", `{"ids":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := serve(t, mux, http.MethodPost, "/load_data/batch", tt.body)

			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d (%s)", code, tt.wantCode, env.Message)
			}

			if code != http.StatusOK {
				if env.Message != network.ErrMissingIDs.Error() {
					t.Errorf("message = %q", env.Message)
				}
				return
			}

			var domains map[string][]network.DomainPair
			json.Unmarshal(env.Data, &domains)

			if len(domains["n1"]) != 1 || domains["n2"] == nil {
				t.Errorf("domains = %v", domains)
			}
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	sys := &fakeSystem{
		graph: &network.Graph{
			Nodes: []network.Node{{ID: "n1"}, {ID: "n2"}},
			Edges: []network.Edge{{ID: "e1", Source: "n1", Target: "n2"}},
		},
	}

	code, env := serve(t, newMux(sys), http.MethodPost, "/load_data/refresh", "")
	if code != http.StatusOK || env.Status != "success" {
		t.Fatalf("code = %d, status = %q", code, env.Status)
	}
	if sys.invalidated != 1 || sys.graphHits != 1 {
		t.Errorf("invalidated = %d, graph loads = %d, want 1 and 1", sys.invalidated, sys.graphHits)
	}

	var result network.RefreshResult
	json.Unmarshal(env.Data, &result)
	if result.Nodes != 2 || result.Edges != 1 {
		t.Errorf("result = %+v", result)
	}

	sys.graphErr = errors.New("connection refused")
	if code, _ := serve(t, newMux(sys), http.MethodPost, "/load_data/refresh", ""); code != http.StatusInternalServerError {
		t.Errorf("failed reload code = %d, want 500", code)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{network.ErrNotFound, http.StatusNotFound},
		{network.ErrMissingIDs, http.StatusBadRequest},
		{network.ErrDuplicate, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := network.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
