package api

import (
	"net/http"

	"github.com/JaimeStill/graph-vis/internal/artifacts"
	"github.com/JaimeStill/graph-vis/internal/network"
	"github.com/JaimeStill/graph-vis/internal/proteins"
	"github.com/JaimeStill/graph-vis/pkg/openapi"
	"github.com/JaimeStill/graph-vis/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	networkHandler := network.NewHandler(domain.Network, runtime.Logger)
	proteinsHandler := proteins.NewHandler(domain.Proteins, runtime.Logger)
	artifactsHandler := artifacts.NewHandler(domain.Artifacts, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		runtime.BasePath,
		spec,
		networkHandler.Routes(),
		proteinsHandler.Routes(),
		artifactsHandler.Routes(),
	)
}
