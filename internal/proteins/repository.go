package proteins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/graph-vis/pkg/query"
	"github.com/JaimeStill/graph-vis/pkg/repository"
)

var proteinProjection = query.NewProjectionMap("public", "proteins", "p").
	Project("id", "ID").
	Project("sequence", "Sequence")

var repeatProjection = query.NewProjectionMap("public", "repeats", "r").
	Project("name", "Name").
	Project("data", "Data")

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a proteins system backed by the proteins and repeats tables.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "proteins"),
	}
}

func (r *repo) Sequence(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}

	q, args := query.NewBuilder(proteinProjection).BuildSingle("ID", id)
	p, err := repository.QueryOne(ctx, r.db, q, args, scanProtein)
	if err != nil {
		return "", repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return p.Sequence, nil
}

func (r *repo) Repeats(ctx context.Context, name string) (*Repeat, error) {
	if name == "" {
		return nil, ErrMissingID
	}

	q, args := query.NewBuilder(repeatProjection).BuildSingle("Name", name)
	rep, err := repository.QueryOne(ctx, r.db, q, args, scanRepeat)
	if errors.Is(err, sql.ErrNoRows) {
		return &Repeat{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query repeats %s: %w", name, err)
	}

	return &rep, nil
}

func scanProtein(s repository.Scanner) (Protein, error) {
	var p Protein
	err := s.Scan(&p.ID, &p.Sequence)
	return p, err
}

func scanRepeat(s repository.Scanner) (Repeat, error) {
	var (
		r    Repeat
		data []byte
	)
	if err := s.Scan(&r.Name, &data); err != nil {
		return r, err
	}
	r.Data = data
	return r, nil
}
