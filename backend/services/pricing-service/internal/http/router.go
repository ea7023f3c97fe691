package httpserver

import (
	"net/http"

	"evcharge/backend/services/pricing-service/internal/http/middleware"
)

// Routes groups handlers.
type Routes struct {
	Pricing http.HandlerFunc
	Health  http.HandlerFunc
}

// NewRouter registers endpoints behind the CORS middleware.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Pricing != nil {
		mux.Handle("GET /pricing/current", routes.Pricing)
	}
	if routes.Health != nil {
		mux.Handle("GET /health", routes.Health)
	}
	return middleware.CORS(mux)
}
