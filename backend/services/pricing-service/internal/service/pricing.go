package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"evcharge/backend/services/pricing-service/internal/clients"
)

// Pricing formula constants.
const (
	BasePricePerKWh         = 0.20
	PeakSurchargeMultiplier = 0.50
)

// fallbackDemandScore is used when the upstream payload omits demand_score.
const fallbackDemandScore = 0.5

// ErrDemandUnavailable indicates the demand service could not be reached or
// answered with a non-success status. Not retried; the caller sees it.
var ErrDemandUnavailable = errors.New("demand service unavailable")

// Quote is the pricing response: the computed price plus the raw demand
// payload it was derived from.
type Quote struct {
	PricePerKWh   float64         `json:"price_per_kwh"`
	BasedOnDemand json.RawMessage `json:"based_on_demand"`
}

// PricingService computes the current price from live demand.
type PricingService struct {
	demand *clients.DemandClient
}

// NewPricingService builds service.
func NewPricingService(demand *clients.DemandClient) *PricingService {
	return &PricingService{demand: demand}
}

// CurrentPrice fetches a demand estimate and applies the linear surcharge
// formula, rounded to 4 decimals.
func (s *PricingService) CurrentPrice(ctx context.Context) (*Quote, error) {
	status, body, err := s.demand.FetchDemand(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDemandUnavailable, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrDemandUnavailable, status)
	}

	var payload struct {
		Score *float64 `json:"demand_score"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrDemandUnavailable, err)
	}

	score := fallbackDemandScore
	if payload.Score != nil {
		score = *payload.Score
	}

	return &Quote{
		PricePerKWh:   round4(BasePricePerKWh + score*PeakSurchargeMultiplier),
		BasedOnDemand: json.RawMessage(body),
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
