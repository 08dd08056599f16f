package network

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/JaimeStill/graph-vis/pkg/query"
	"github.com/JaimeStill/graph-vis/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	load   func(ctx context.Context) (*Graph, error)

	mu    sync.RWMutex
	graph *Graph
}

// New creates a network system backed by the nodes and edges tables.
func New(db *sql.DB, logger *slog.Logger) System {
	r := &repo{
		db:     db,
		logger: logger.With("system", "network"),
	}
	r.load = r.queryGraph
	return r
}

func (r *repo) Graph(ctx context.Context) (*Graph, error) {
	r.mu.RLock()
	cached := r.graph
	r.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.graph != nil {
		return r.graph, nil
	}

	graph, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.graph = graph
	r.logger.Info("graph loaded", "nodes", len(graph.Nodes), "edges", len(graph.Edges))
	return r.graph, nil
}

func (r *repo) queryGraph(ctx context.Context) (*Graph, error) {
	nodeSQL, nodeArgs := query.NewBuilder(nodeProjection, nodeOrder).BuildSelect()
	nodes, err := repository.QueryMany(ctx, r.db, nodeSQL, nodeArgs, scanNode)
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}

	edgeSQL, edgeArgs := query.NewBuilder(edgeProjection, edgeOrder).BuildSelect()
	edges, err := repository.QueryMany(ctx, r.db, edgeSQL, edgeArgs, scanEdge)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}

	return &Graph{Nodes: nodes, Edges: edges}, nil
}

func (r *repo) Invalidate() {
	r.mu.Lock()
	r.graph = nil
	r.mu.Unlock()
}

func (r *repo) Neighborhood(ctx context.Context, nodeID string) (*Neighborhood, error) {
	nodeSQL, nodeArgs := query.NewBuilder(nodeProjection).BuildSingle("ID", nodeID)
	node, err := repository.QueryOne(ctx, r.db, nodeSQL, nodeArgs, scanNode)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	edgeSQL, edgeArgs := query.
		NewBuilder(edgeProjection, edgeOrder).
		WhereAny(nodeID, "Source", "Target").
		BuildSelect()

	edges, err := repository.QueryMany(ctx, r.db, edgeSQL, edgeArgs, scanEdge)
	if err != nil {
		return nil, fmt.Errorf("query incident edges: %w", err)
	}

	neighbors := []Node{}
	if ids := NeighborIDs(node.ID, edges); len(ids) > 0 {
		neighborSQL, neighborArgs := query.
			NewBuilder(nodeProjection, nodeOrder).
			WhereIn("ID", toArgs(ids)).
			BuildSelect()

		neighbors, err = repository.QueryMany(ctx, r.db, neighborSQL, neighborArgs, scanNode)
		if err != nil {
			return nil, fmt.Errorf("query neighbors: %w", err)
		}
	}

	return &Neighborhood{
		Node:      node,
		Edges:     edges,
		Neighbors: neighbors,
	}, nil
}

func (r *repo) Domains(ctx context.Context, ids []string) (map[string][]DomainPair, error) {
	if len(ids) == 0 {
		return nil, ErrMissingIDs
	}

	q, args := query.
		NewBuilder(edgeDetailProjection, edgeOrder).
		WhereAnyIn(toArgs(ids), "Source", "Target").
		BuildSelect()

	edges, err := repository.QueryMany(ctx, r.db, q, args, scanEdgeDetail)
	if err != nil {
		return nil, fmt.Errorf("query domain edges: %w", err)
	}

	return Domains(edges), nil
}

func (r *repo) ProteinIDs(ctx context.Context, nodeID string) ([]string, error) {
	q, args := query.
		NewBuilder(edgeDetailProjection, edgeOrder).
		WhereAny(nodeID, "Source", "Target").
		BuildSelect()

	edges, err := repository.QueryMany(ctx, r.db, q, args, scanEdgeDetail)
	if err != nil {
		return nil, fmt.Errorf("query protein edges: %w", err)
	}

	return MergeProteinIDs(edges), nil
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
