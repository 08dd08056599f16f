package api

import (
	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/internal/infrastructure"
	"github.com/JaimeStill/graph-vis/pkg/pagination"
)

// Runtime is the slice of infrastructure and API settings the graph
// handlers run with. Its logger is scoped to the api module.
type Runtime struct {
	*infrastructure.Infrastructure
	BasePath   string
	Pagination pagination.Config
}

func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		BasePath:       cfg.API.BasePath,
		Pagination:     cfg.API.Pagination,
	}
}
