package artifacts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/storage"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrMissingID   = errors.New("missing ID parameter")
	ErrInvalidID   = errors.New("invalid ID")
	ErrUnknownKind = errors.New("unknown artifact kind")
	ErrTooLarge    = errors.New("file exceeds size limit")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingID), errors.Is(err, ErrInvalidID), errors.Is(err, ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func mapStorageError(err error, file string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, file)
	case errors.Is(err, storage.ErrInvalidKey):
		return fmt.Errorf("%w: %s", ErrInvalidID, file)
	case errors.Is(err, storage.ErrTooLarge):
		return fmt.Errorf("%w: %s", ErrTooLarge, file)
	default:
		return fmt.Errorf("read %s: %w", file, err)
	}
}
