// Package decode converts loosely typed JSON values into typed structs.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned when a request carries no JSON payload.
var ErrEmptyBody = errors.New("request body is empty")

// FromMap round-trips data through JSON into T.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// Body decodes a JSON request body into T, reading at most limit bytes.
// Fields T does not declare are ignored.
func Body[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var result T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))

	if err := dec.Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return result, ErrEmptyBody
		}
		return result, fmt.Errorf("decode body: %w", err)
	}

	return result, nil
}
