package artifacts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/graph-vis/pkg/handlers"
	"github.com/JaimeStill/graph-vis/pkg/pagination"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "artifacts"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Artifacts"},
		Description: "Per-protein SVG, PDB and GenBank files",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/svg", Handler: h.get(KindSVG), OpenAPI: Spec.SVG},
			{Method: "GET", Pattern: "/svg/page", Handler: h.Page, OpenAPI: Spec.Page},
			{Method: "GET", Pattern: "/pdb", Handler: h.get(KindPDB), OpenAPI: Spec.PDB},
			{Method: "GET", Pattern: "/gbk", Handler: h.get(KindGBK), OpenAPI: Spec.GBK},
		},
		Schemas: Spec.Schemas,
	}
}

func (h *Handler) get(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := h.sys.Get(r.Context(), kind, r.URL.Query().Get("id"))
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}

		handlers.RespondOK(w, content)
	}
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req := pagination.PageRequestFromQuery(values, h.pagination)

	page, err := h.sys.Page(r.Context(), values.Get("id"), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondOK(w, page)
}
