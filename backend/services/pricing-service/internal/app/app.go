package app

import (
	"context"

	"go.uber.org/zap"

	"evcharge/backend/services/pricing-service/internal/clients"
	"evcharge/backend/services/pricing-service/internal/config"
	httpserver "evcharge/backend/services/pricing-service/internal/http"
	"evcharge/backend/services/pricing-service/internal/http/handlers"
	"evcharge/backend/services/pricing-service/internal/service"
)

// App wires pricing-service dependencies.
type App struct {
	server *httpserver.Server
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) *App {
	httpClient := clients.NewDefaultHTTPClient(cfg.HTTPTimeout())
	demandClient := clients.NewDemandClient(cfg.Services.DemandURL, httpClient)
	pricingService := service.NewPricingService(demandClient)

	routes := httpserver.Routes{
		Pricing: handlers.NewPricingHandler(pricingService, logger),
		Health:  handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{server: server}
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
