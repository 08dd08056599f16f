package artifacts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/graph-vis/pkg/pagination"
	"github.com/JaimeStill/graph-vis/pkg/storage"
)

// ProteinSource lists the proteins carried by the edges of a node.
type ProteinSource interface {
	ProteinIDs(ctx context.Context, nodeID string) ([]string, error)
}

// System reads artifact files.
type System interface {
	// Get returns the contents of the kind artifact for id.
	Get(ctx context.Context, kind Kind, id string) (string, error)

	// Page returns the SVG diagrams for one page of the proteins of nodeID.
	Page(ctx context.Context, nodeID string, req pagination.PageRequest) (*SVGPage, error)
}

type system struct {
	stores   map[Kind]storage.System
	proteins ProteinSource
	logger   *slog.Logger
}

// New creates an artifact system over one store per kind.
func New(stores map[Kind]storage.System, proteins ProteinSource, logger *slog.Logger) (System, error) {
	for _, k := range Kinds() {
		if stores[k] == nil {
			return nil, fmt.Errorf("no store configured for %s artifacts", k)
		}
	}

	return &system{
		stores:   stores,
		proteins: proteins,
		logger:   logger.With("system", "artifacts"),
	}, nil
}

func (s *system) Get(ctx context.Context, kind Kind, id string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	file, err := fileName(kind, id)
	if err != nil {
		return "", err
	}

	data, err := s.stores[kind].Retrieve(ctx, file)
	if err != nil {
		return "", mapStorageError(err, file)
	}

	return string(data), nil
}

func (s *system) Page(ctx context.Context, nodeID string, req pagination.PageRequest) (*SVGPage, error) {
	if nodeID == "" {
		return nil, ErrMissingID
	}

	ids, err := s.proteins.ProteinIDs(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("list proteins of %s: %w", nodeID, err)
	}

	page := newSVGPage(len(ids), req)

	for _, id := range pagination.Slice(ids, req) {
		file, err := fileName(KindSVG, id)
		if err != nil {
			return nil, err
		}

		ok, err := s.stores[KindSVG].Exists(ctx, file)
		if err != nil {
			return nil, mapStorageError(err, file)
		}
		if !ok {
			continue
		}

		svg, err := s.Get(ctx, KindSVG, id)
		if err != nil {
			return nil, err
		}

		page.ProteinIDs = append(page.ProteinIDs, id)
		page.SVGs = append(page.SVGs, svg)
	}

	s.logger.Debug(
		"svg page",
		"node", nodeID,
		"page", req.PageNum,
		"found", len(page.SVGs),
		"total", page.Total,
	)

	return page, nil
}

// fileName validates id and returns its file name for kind. Ids may not
// name a path.
func fileName(kind Kind, id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}

	file := kind.FileName(id)
	if strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrInvalidID, file)
	}
	return file, nil
}
