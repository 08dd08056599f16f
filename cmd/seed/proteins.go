package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/graph-vis/internal/proteins"
)

func init() {
	registerSeeder(&SequenceSeeder{})
	registerSeeder(&RepeatSeeder{})
}

// SequenceSeeder replaces the proteins table from a JSON list of
// {"id", "sequence"} records.
type SequenceSeeder struct {
	file string
}

func (s *SequenceSeeder) Name() string {
	return "proteins"
}

func (s *SequenceSeeder) Description() string {
	return "Imports protein sequences"
}

func (s *SequenceSeeder) SetFile(path string) {
	s.file = path
}

func (s *SequenceSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := readFile(s.file, "sequence")
	if err != nil {
		return err
	}

	records, err := proteins.ParseSequences(data)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM proteins`); err != nil {
		return fmt.Errorf("clear proteins: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO proteins (id, sequence) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET sequence = EXCLUDED.sequence`)
	if err != nil {
		return fmt.Errorf("prepare protein insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range records {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Sequence); err != nil {
			return fmt.Errorf("insert protein %s: %w", p.ID, err)
		}
	}

	return recordImport(ctx, tx, s.Name(), s.file, len(records))
}

// RepeatSeeder replaces the repeats table from a JSON list of repeat
// documents keyed by protein name.
type RepeatSeeder struct {
	file string
}

func (s *RepeatSeeder) Name() string {
	return "repeats"
}

func (s *RepeatSeeder) Description() string {
	return "Imports CRISPR repeat summaries"
}

func (s *RepeatSeeder) SetFile(path string) {
	s.file = path
}

func (s *RepeatSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := readFile(s.file, "repeats")
	if err != nil {
		return err
	}

	records, err := proteins.ParseRepeats(data)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM repeats`); err != nil {
		return fmt.Errorf("clear repeats: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO repeats (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`)
	if err != nil {
		return fmt.Errorf("prepare repeat insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Name, []byte(r.Data)); err != nil {
			return fmt.Errorf("insert repeat %s: %w", r.Name, err)
		}
	}

	return recordImport(ctx, tx, s.Name(), s.file, len(records))
}
