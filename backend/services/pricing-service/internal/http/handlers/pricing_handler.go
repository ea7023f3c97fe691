package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"evcharge/backend/services/pricing-service/internal/service"
)

// NewPricingHandler returns GET /pricing/current handler.
func NewPricingHandler(svc *service.PricingService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := svc.CurrentPrice(r.Context())
		if errors.Is(err, service.ErrDemandUnavailable) {
			logger.Warn("demand fetch failed", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		if err != nil {
			logger.Error("pricing failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to compute pricing")
			return
		}
		writeJSON(w, http.StatusOK, quote)
	}
}

// NewHealthHandler returns GET /health handler.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
