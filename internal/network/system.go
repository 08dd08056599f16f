package network

import "context"

// System reads the co-occurrence network.
type System interface {
	// Graph returns every node and edge. The result is cached after the
	// first successful load until Invalidate is called.
	Graph(ctx context.Context) (*Graph, error)

	// Neighborhood returns nodeID, its incident edges and its neighbors.
	// Unknown nodes return ErrNotFound.
	Neighborhood(ctx context.Context, nodeID string) (*Neighborhood, error)

	// Domains returns domain pairs for every node touched by an edge
	// incident to any of ids. Empty ids return ErrMissingIDs.
	Domains(ctx context.Context, ids []string) (map[string][]DomainPair, error)

	// ProteinIDs returns the distinct proteins across the edges of nodeID.
	ProteinIDs(ctx context.Context, nodeID string) ([]string, error)

	Invalidate()
}
