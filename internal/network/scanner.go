package network

import (
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/graph-vis/pkg/repository"
)

func scanNode(s repository.Scanner) (Node, error) {
	var n Node
	err := s.Scan(
		&n.ID,
		&n.Name,
		&n.NumberOfProteins,
		&n.PfamAccession,
		&n.X,
		&n.Y,
	)
	return n, err
}

func scanEdge(s repository.Scanner) (Edge, error) {
	var e Edge
	err := s.Scan(
		&e.ID,
		&e.Name,
		&e.Source,
		&e.Target,
		&e.NumberOfProteins,
		&e.PresenceStatus,
	)
	return e, err
}

func scanEdgeDetail(s repository.Scanner) (EdgeDetail, error) {
	var (
		e        EdgeDetail
		proteins []byte
	)

	err := s.Scan(
		&e.ID,
		&e.Name,
		&e.Source,
		&e.Target,
		&e.NumberOfProteins,
		&e.PresenceStatus,
		&e.SourcePfamAccession,
		&e.TargetPfamAccession,
		&proteins,
	)
	if err != nil {
		return e, err
	}

	if err := json.Unmarshal(proteins, &e.ProteinIDs); err != nil {
		return e, fmt.Errorf("decode protein_ids for edge %s: %w", e.ID, err)
	}
	return e, nil
}
