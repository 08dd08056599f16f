// Package main provides the seed command for importing the network export,
// protein sequences and repeat summaries into the database. Each seeder
// replaces its tables and can run alone or together with the others inside
// a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/JaimeStill/graph-vis/pkg/repository"
)

// Seeder defines the interface for database seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed executes the seeding logic within the provided transaction.
	// The transaction allows all-or-nothing semantics across multiple seeders.
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// runSeeders executes the named seeders within one transaction and returns
// how many ran. If any seeder fails, the entire transaction is rolled back.
func runSeeders(ctx context.Context, db *sql.DB, names ...string) (int, error) {
	return repository.WithTx(ctx, db, func(tx *sql.Tx) (int, error) {
		for i, name := range names {
			seeder, ok := getSeeder(name)
			if !ok {
				return i, fmt.Errorf("seeder not found: %s", name)
			}

			if err := seeder.Seed(ctx, tx); err != nil {
				return i, fmt.Errorf("seed %s: %w", name, err)
			}
		}
		return len(names), nil
	})
}

// recordImport logs a completed import batch under a fresh id.
func recordImport(ctx context.Context, tx *sql.Tx, seeder, source string, records int) error {
	id := uuid.New()

	err := repository.ExecExpectOne(ctx, tx,
		`INSERT INTO imports (id, seeder, source, records) VALUES ($1, $2, $3, $4)`,
		id, seeder, source, records,
	)
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}

	fmt.Printf("%s: imported %d records from %s (batch %s)\n", seeder, records, source, id)
	return nil
}

func readFile(path, what string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%s file required", what)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s file: %w", what, err)
	}
	return data, nil
}
