package proteins

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/handlers"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "proteins"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Proteins"},
		Description: "Protein sequences and repeat summaries",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/sequence", Handler: h.Sequence, OpenAPI: Spec.Sequence},
			{Method: "GET", Pattern: "/repeat", Handler: h.Repeats, OpenAPI: Spec.Repeats},
		},
		Schemas: Spec.Schemas,
	}
}

func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingID)
		return
	}

	seq, err := h.sys.Sequence(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, seq)
}

// Repeats responds with the stored repeat document, or null data when the
// protein has none.
func (h *Handler) Repeats(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingID)
		return
	}

	rep, err := h.sys.Repeats(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if rep == nil || len(rep.Data) == 0 {
		handlers.RespondOK(w, nil)
		return
	}

	handlers.RespondOK(w, rep.Data)
}
