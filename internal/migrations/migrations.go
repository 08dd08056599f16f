// Package migrations embeds the database schema and applies it with
// golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration files.
func Source() (source.Driver, error) {
	d, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return d, nil
}

// Migrator applies embedded migrations to one database.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// New connects to databaseURL, a pgx5:// URL.
func New(databaseURL string, logger *slog.Logger) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}

	return &Migrator{
		m:      m,
		logger: logger.With("system", "migrations"),
	}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Migrator) Up() error {
	return r.run("up", r.m.Up)
}

// Down reverts every applied migration.
func (r *Migrator) Down() error {
	return r.run("down", r.m.Down)
}

// Steps applies n migrations, reverting when n is negative.
func (r *Migrator) Steps(n int) error {
	return r.run("steps", func() error { return r.m.Steps(n) })
}

// Version reports the current schema version and whether it is dirty.
func (r *Migrator) Version() (uint, bool, error) {
	v, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (r *Migrator) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (r *Migrator) run(name string, fn func() error) error {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		r.logger.Info("schema unchanged", "op", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", name, err)
	}

	v, dirty, _ := r.Version()
	r.logger.Info("schema migrated", "op", name, "version", v, "dirty", dirty)
	return nil
}
