package main

import (
	"net/http"

	"github.com/JaimeStill/graph-vis/internal/api"
	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/internal/infrastructure"
	"github.com/JaimeStill/graph-vis/pkg/lifecycle"
	"github.com/JaimeStill/graph-vis/pkg/middleware"
	"github.com/JaimeStill/graph-vis/pkg/module"
	"github.com/JaimeStill/graph-vis/web/app"
	"github.com/JaimeStill/graph-vis/web/scalar"
)

const scalarBasePath = "/scalar"

type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(cfg *config.Config, infra *infrastructure.Infrastructure) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.App.BasePath, app.ClientSettings{
		APIBase: cfg.API.BasePath,
		Timeout: cfg.App.APITimeoutDuration().Milliseconds(),
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	scalarModule, err := scalar.NewModule(
		scalarBasePath,
		cfg.API.OpenAPI.Title,
		cfg.API.BasePath+"/openapi.json",
	)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(lc *lifecycle.Coordinator, appPath string) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
