package app

import (
	"context"

	"go.uber.org/zap"

	"evcharge/backend/services/demand-service/internal/config"
	httpserver "evcharge/backend/services/demand-service/internal/http"
	"evcharge/backend/services/demand-service/internal/http/handlers"
	"evcharge/backend/services/demand-service/internal/service"
)

// App wires demand-service dependencies. The service holds no state beyond
// the estimator itself.
type App struct {
	server *httpserver.Server
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) *App {
	estimator := service.NewEstimator()

	routes := httpserver.Routes{
		Demand: handlers.NewDemandHandler(estimator),
		Health: handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{server: server}
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
