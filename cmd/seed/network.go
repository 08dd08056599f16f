package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/graph-vis/internal/cytoscape"
)

func init() {
	registerSeeder(&NetworkSeeder{})
}

// NetworkSeeder replaces the nodes and edges tables with a Cytoscape export.
// Edge proteins come from a separate domain pair map.
type NetworkSeeder struct {
	file       string
	proteinMap string
}

func (s *NetworkSeeder) Name() string {
	return "network"
}

func (s *NetworkSeeder) Description() string {
	return "Imports nodes and edges from a Cytoscape .cyjs export and a domain pair protein map"
}

func (s *NetworkSeeder) SetFiles(export, proteinMap string) {
	s.file = export
	s.proteinMap = proteinMap
}

func (s *NetworkSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM edges`); err != nil {
		return fmt.Errorf("clear edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return fmt.Errorf("clear nodes: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (id, name, number_of_proteins, pfam_accession, x, y)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range doc.Nodes {
		if _, err := nodeStmt.ExecContext(ctx, n.ID, n.Name, n.NumberOfProteins, n.PfamAccession, n.X, n.Y); err != nil {
			return fmt.Errorf("insert node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO edges (
			id, name, source, target, number_of_proteins, presence_status,
			source_pfam_accession, target_pfam_accession, protein_ids
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return fmt.Errorf("prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range doc.Edges {
		proteins, err := json.Marshal(e.ProteinIDs)
		if err != nil {
			return fmt.Errorf("encode proteins of edge %s: %w", e.ID, err)
		}

		_, err = edgeStmt.ExecContext(ctx,
			e.ID, e.Name, e.Source, e.Target, e.NumberOfProteins, e.PresenceStatus,
			e.SourcePfamAccession, e.TargetPfamAccession, proteins,
		)
		if err != nil {
			return fmt.Errorf("insert edge %s: %w", e.ID, err)
		}
	}

	return recordImport(ctx, tx, s.Name(), s.file, len(doc.Nodes)+len(doc.Edges))
}

func (s *NetworkSeeder) load() (*cytoscape.Document, error) {
	export, err := readFile(s.file, "network export")
	if err != nil {
		return nil, err
	}

	proteinMap := map[string][]string{}
	if s.proteinMap != "" {
		data, err := readFile(s.proteinMap, "protein map")
		if err != nil {
			return nil, err
		}
		if proteinMap, err = cytoscape.ParseProteinMap(data); err != nil {
			return nil, err
		}
	}

	return cytoscape.Parse(export, proteinMap)
}
