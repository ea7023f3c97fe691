package httpserver

import (
	"net/http"

	"evcharge/backend/services/station-service/internal/http/handlers"
	"evcharge/backend/services/station-service/internal/http/middleware"
)

// Routes groups handlers.
type Routes struct {
	Root     http.HandlerFunc
	Stations *handlers.StationHandlers
}

// NewRouter registers endpoints behind the CORS middleware.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()

	if routes.Root != nil {
		mux.Handle("GET /{$}", routes.Root)
	}
	if routes.Stations != nil {
		mux.HandleFunc("POST /stations", routes.Stations.Create)
		mux.HandleFunc("GET /stations", routes.Stations.List)
		mux.HandleFunc("GET /stations/{id}", routes.Stations.GetByID)
		mux.HandleFunc("PUT /stations/{id}", routes.Stations.Update)
		mux.HandleFunc("DELETE /stations/{id}", routes.Stations.Delete)
	}

	return middleware.CORS(mux)
}
