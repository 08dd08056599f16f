package proteins

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("no matching record found")
	ErrDuplicate = errors.New("protein already exists")
	ErrMissingID = errors.New("missing ID parameter")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingID):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
