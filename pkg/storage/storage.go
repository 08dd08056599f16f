// Package storage reads files below a fixed root directory.
package storage

import (
	"context"
	"errors"

	"github.com/JaimeStill/graph-vis/pkg/lifecycle"
)

var (
	ErrNotFound         = errors.New("storage: key not found")
	ErrPermissionDenied = errors.New("storage: permission denied")
	ErrInvalidKey       = errors.New("storage: invalid key")
	ErrTooLarge         = errors.New("storage: file exceeds size limit")
)

// System reads files addressed by keys relative to its root.
type System interface {
	Start(lc *lifecycle.Coordinator) error

	// Retrieve returns the file at key. Files larger than the configured
	// limit return ErrTooLarge.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether key names a regular file.
	Exists(ctx context.Context, key string) (bool, error)
}
