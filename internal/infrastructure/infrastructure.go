// Package infrastructure assembles the shared systems every module depends on.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/pkg/database"
	"github.com/JaimeStill/graph-vis/pkg/lifecycle"
	"github.com/JaimeStill/graph-vis/pkg/logging"
	"github.com/JaimeStill/graph-vis/pkg/storage"
)

// Stores holds one filesystem store per artifact kind.
type Stores struct {
	SVG storage.System
	PDB storage.System
	GBK storage.System
}

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Stores    Stores
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	stores, err := newStores(&cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Stores:    stores,
	}, nil
}

// Start registers every system with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	for _, s := range i.Stores.all() {
		if err := s.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}

func (s Stores) all() []storage.System {
	return []storage.System{s.SVG, s.PDB, s.GBK}
}

func newStores(cfg *config.StorageConfig, logger *slog.Logger) (Stores, error) {
	svg, err := storage.New(&cfg.SVG, logger.With("kind", "svg"))
	if err != nil {
		return Stores{}, fmt.Errorf("svg storage init failed: %w", err)
	}

	pdb, err := storage.New(&cfg.PDB, logger.With("kind", "pdb"))
	if err != nil {
		return Stores{}, fmt.Errorf("pdb storage init failed: %w", err)
	}

	gbk, err := storage.New(&cfg.GBK, logger.With("kind", "gbk"))
	if err != nil {
		return Stores{}, fmt.Errorf("gbk storage init failed: %w", err)
	}

	return Stores{SVG: svg, PDB: pdb, GBK: gbk}, nil
}
