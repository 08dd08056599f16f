package network

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/decode"
	"github.com/JaimeStill/graph-vis/pkg/handlers"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

const maxBatchBody = 1 << 20

// Handler provides HTTP endpoints for the network graph.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "network"),
	}
}

// Routes returns the network endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/load_data",
		Tags:        []string{"Network"},
		Description: "Domain co-occurrence network",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Graph, OpenAPI: Spec.Graph},
			{Method: "GET", Pattern: "/{id}", Handler: h.Neighborhood, OpenAPI: Spec.Neighborhood},
			{Method: "POST", Pattern: "/batch", Handler: h.Domains, OpenAPI: Spec.Domains},
			{Method: "POST", Pattern: "/refresh", Handler: h.Refresh, OpenAPI: Spec.Refresh},
		},
		Schemas: Spec.Schemas,
	}
}

func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	graph, err := h.sys.Graph(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, graph)
}

func (h *Handler) Neighborhood(w http.ResponseWriter, r *http.Request) {
	hood, err := h.sys.Neighborhood(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, hood)
}

func (h *Handler) Domains(w http.ResponseWriter, r *http.Request) {
	req, err := decode.Body[BatchRequest](w, r, maxBatchBody)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingIDs)
		return
	}

	domains, err := h.sys.Domains(r.Context(), req.IDs)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, domains)
}

// Refresh drops the cached graph and reloads it, so a reseeded database is
// served without a restart.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.sys.Invalidate()

	graph, err := h.sys.Graph(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.logger.Info("graph refreshed", "nodes", len(graph.Nodes), "edges", len(graph.Edges))
	handlers.RespondOK(w, RefreshResult{Nodes: len(graph.Nodes), Edges: len(graph.Edges)})
}
