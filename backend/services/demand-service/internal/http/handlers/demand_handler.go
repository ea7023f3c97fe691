package handlers

import (
	"net/http"

	"evcharge/backend/services/demand-service/internal/service"
)

// NewDemandHandler returns GET /predict/demand handler.
func NewDemandHandler(estimator *service.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, estimator.Estimate())
	}
}

// NewHealthHandler returns GET /health handler.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
