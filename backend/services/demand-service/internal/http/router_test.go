package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evcharge/backend/services/demand-service/internal/http/handlers"
	"evcharge/backend/services/demand-service/internal/service"
)

func TestPredictDemandPayload(t *testing.T) {
	router := NewRouter(Routes{
		Demand: handlers.NewDemandHandler(service.NewEstimator()),
		Health: handlers.NewHealthHandler(),
	})
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/predict/demand")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Score       float64 `json:"demand_score"`
		Description string  `json:"demand_description"`
		Timestamp   string  `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	switch payload.Score {
	case 0.9, 0.5, 0.2:
	default:
		t.Fatalf("score %v outside scenario set", payload.Score)
	}
	if payload.Description == "" {
		t.Fatalf("missing demand_description")
	}
	if _, err := time.Parse(time.RFC3339, payload.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", payload.Timestamp, err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(Routes{Health: handlers.NewHealthHandler()})
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
