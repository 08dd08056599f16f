package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/graph-vis/pkg/lifecycle"
)

type filesystem struct {
	root    string
	maxSize int64
	logger  *slog.Logger
}

// New creates a filesystem store rooted at cfg.BasePath resolved to an
// absolute path. cfg must be finalized.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	root, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		root:    root,
		maxSize: cfg.MaxFileSizeBytes(),
		logger:  logger.With("system", "storage", "root", root),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		info, err := os.Stat(f.root)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			f.logger.Warn("storage root missing, creating")
			if err := os.MkdirAll(f.root, 0755); err != nil {
				f.logger.Error("storage initialization failed", "error", err)
			}
		case err != nil:
			f.logger.Error("storage root unreadable", "error", err)
		case !info.IsDir():
			f.logger.Error("storage root is not a directory")
		default:
			f.logger.Info("storage root ready")
		}
	})
	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, mapFSError(err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}
	if f.maxSize > 0 && info.Size() > f.maxSize {
		return nil, ErrTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func (f *filesystem) Exists(ctx context.Context, key string) (bool, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, mapFSError(err)
	}

	return info.Mode().IsRegular(), nil
}

func (f *filesystem) fullPath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}

	full := filepath.Join(f.root, cleaned)
	if full != f.root && !strings.HasPrefix(full, f.root+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return full, nil
}

func mapFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return err
	}
}
