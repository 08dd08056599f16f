package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/JaimeStill/graph-vis/pkg/httpclient"
)

func newClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	cfg := &httpclient.Config{BaseURL: baseURL}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return httpclient.New(cfg)
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := newClient(t, "http://localhost:5000")

	if c.Timeout() != 5000*time.Millisecond {
		t.Errorf("Timeout() = %v, want 5s", c.Timeout())
	}
}

func TestNew_BaseURLFromEnvironment(t *testing.T) {
	t.Setenv("TEST_APP_BASE_URL", "http://graph.example:5001/api")

	cfg := &httpclient.Config{}
	if err := cfg.Finalize(&httpclient.Env{BaseURL: "TEST_APP_BASE_URL"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	c := httpclient.New(cfg)
	if got := c.BaseURL().String(); got != "http://graph.example:5001/api" {
		t.Errorf("BaseURL() = %q, want env value", got)
	}
}

func TestConfig_Finalize_MissingBaseURL(t *testing.T) {
	cfg := &httpclient.Config{}
	err := cfg.Finalize(&httpclient.Env{BaseURL: "TEST_UNSET_BASE_URL"})
	if !errors.Is(err, httpclient.ErrBaseURLRequired) {
		t.Errorf("Finalize() error = %v, want ErrBaseURLRequired", err)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  httpclient.Config
	}{
		{"bad timeout", httpclient.Config{BaseURL: "http://x", Timeout: "soon"}},
		{"zero timeout", httpclient.Config{BaseURL: "http://x", Timeout: "0s"}},
		{"relative base", httpclient.Config{BaseURL: "/api"}},
		{"ftp base", httpclient.Config{BaseURL: "ftp://files.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() should return error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &httpclient.Config{BaseURL: "http://a", Timeout: "5000ms"}
	cfg.Merge(&httpclient.Config{BaseURL: "http://b"})

	if cfg.BaseURL != "http://b" {
		t.Errorf("BaseURL = %q, want http://b", cfg.BaseURL)
	}
	if cfg.Timeout != "5000ms" {
		t.Errorf("Timeout = %q, want unchanged", cfg.Timeout)
	}
}

func TestClient_Resolve(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://host:5000", "/load_data", "http://host:5000/load_data"},
		{"http://host:5000/api", "/load_data", "http://host:5000/api/load_data"},
		{"http://host:5000/api/", "svg", "http://host:5000/api/svg"},
		{"http://host:5000/api", "/load_data/PF00001%20x", "http://host:5000/api/load_data/PF00001%20x"},
		{"http://host:5000/api", "/load_data/PF00001 x", "http://host:5000/api/load_data/PF00001%20x"},
		{"http://host:5000/api", "/load_data/a%2Fb", "http://host:5000/api/load_data/a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.base+tt.path, func(t *testing.T) {
			c := newClient(t, tt.base)
			if got := c.Resolve(tt.path, nil); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sequence" {
			t.Errorf("path = %q, want /api/sequence", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "P1" {
			t.Errorf("id = %q, want P1", r.URL.Query().Get("id"))
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "data": "MKV"})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL+"/api")

	var out struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	if err := c.GetJSON(context.Background(), "/sequence", url.Values{"id": {"P1"}}, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if out.Data != "MKV" {
		t.Errorf("Data = %q, want MKV", out.Data)
	}
}

func TestClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]int{"count": len(body["ids"])})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	var out struct {
		Count int `json:"count"`
	}
	err := c.PostJSON(context.Background(), "/load_data/batch", map[string][]string{"ids": {"a", "b"}}, &out)
	if err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"not found"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)

	err := c.GetJSON(context.Background(), "/missing", nil, nil)

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
}

func TestClient_TimeoutApplied(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	cfg := &httpclient.Config{BaseURL: srv.URL, Timeout: "50ms"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	c := httpclient.New(cfg)

	start := time.Now()
	err := c.GetJSON(context.Background(), "/slow", nil, nil)
	if err == nil {
		t.Fatal("GetJSON() should time out")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("request took %v, timeout not applied", elapsed)
	}
}
