package decode_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/graph-vis/pkg/decode"
)

type node struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
}

type batch struct {
	IDs []string `json:"ids"`
}

func TestFromMap(t *testing.T) {
	result, err := decode.FromMap[node](map[string]any{
		"id": "PF00001",
		"x":  12.5,
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	if result.ID != "PF00001" || result.X != 12.5 {
		t.Errorf("result = %+v", result)
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	_, err := decode.FromMap[node](map[string]any{"x": "not a number"})
	if err == nil {
		t.Error("FromMap() expected error for mismatched type")
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr bool
		wantLen int
	}{
		{"valid", `{"ids":["a","b"]}`, 1024, false, 2},
		{"empty", ``, 1024, true, 0},
		{"unknown field ignored", `{"ids":["a"],"extra":1}`, 1024, false, 1},
		{"too large", `{"ids":["aaaaaaaaaaaaaaaa"]}`, 8, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			got, err := decode.Body[batch](w, req, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Body() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && len(got.IDs) != tt.wantLen {
				t.Errorf("len(IDs) = %d, want %d", len(got.IDs), tt.wantLen)
			}
		})
	}
}

func TestBody_EmptyIsSentinel(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	_, err := decode.Body[batch](httptest.NewRecorder(), req, 64)
	if !errors.Is(err, decode.ErrEmptyBody) {
		t.Errorf("error = %v, want ErrEmptyBody", err)
	}
}
