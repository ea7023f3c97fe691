package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"evcharge/backend/services/station-service/internal/config"
	"evcharge/backend/services/station-service/internal/db"
	httpserver "evcharge/backend/services/station-service/internal/http"
	"evcharge/backend/services/station-service/internal/http/handlers"
	"evcharge/backend/services/station-service/internal/repository"
)

// App wires station-service dependencies.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs the application graph and bootstraps the schema. Schema
// bootstrap failure after all retries is logged but not fatal: the process
// serves anyway and storage-backed requests fail at the storage layer.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.DSN())
	if err != nil {
		return nil, err
	}

	stationRepo := repository.NewStationRepository(sqlDB)

	if err := db.EnsureSchema(ctx, stationRepo.CreateSchema, db.DefaultSchemaAttempts, db.DefaultSchemaInterval, logger); err != nil {
		logger.Error("schema bootstrap failed, serving anyway", zap.Error(err))
	}

	routes := httpserver.Routes{
		Root:     handlers.NewRootHandler(),
		Stations: handlers.NewStationHandlers(stationRepo, logger),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
