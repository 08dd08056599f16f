// Package api assembles the graph API module: domain systems, their HTTP
// handlers and the OpenAPI document describing them.
package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/internal/infrastructure"
	"github.com/JaimeStill/graph-vis/pkg/handlers"
	"github.com/JaimeStill/graph-vis/pkg/middleware"
	"github.com/JaimeStill/graph-vis/pkg/module"
	"github.com/JaimeStill/graph-vis/pkg/openapi"
)

var ErrRouteNotFound = errors.New("route not found")

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.AddServer(cfg.Domain)
	cfg.API.OpenAPI.Apply(spec)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, runtime.Logger, http.StatusNotFound, ErrRouteNotFound)
	})

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.TrimSlash(nil))
	m.Use(middleware.CORS(&cfg.API.CORS))

	return m, nil
}
