package httpserver

import (
	"net/http"

	"evcharge/backend/services/demand-service/internal/http/middleware"
)

// Routes groups handlers.
type Routes struct {
	Demand http.HandlerFunc
	Health http.HandlerFunc
}

// NewRouter registers endpoints behind the CORS middleware.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Demand != nil {
		mux.Handle("GET /predict/demand", routes.Demand)
	}
	if routes.Health != nil {
		mux.Handle("GET /health", routes.Health)
	}
	return middleware.CORS(mux)
}
