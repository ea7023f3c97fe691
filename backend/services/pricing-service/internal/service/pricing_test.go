package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evcharge/backend/services/pricing-service/internal/clients"
)

func demandStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/demand" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newService(url string) *PricingService {
	client := clients.NewDemandClient(url, clients.NewDefaultHTTPClient(2*time.Second))
	return NewPricingService(client)
}

func TestCurrentPriceFormula(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{0.5, 0.45},
		{0.9, 0.65},
		{0.2, 0.30},
	}
	for _, tc := range cases {
		stub := demandStub(t, http.StatusOK,
			fmt.Sprintf(`{"demand_score":%g,"demand_description":"x","timestamp":"2025-06-01T12:00:00Z"}`, tc.score))
		quote, err := newService(stub.URL).CurrentPrice(context.Background())
		if err != nil {
			t.Fatalf("score %v: unexpected error: %v", tc.score, err)
		}
		if quote.PricePerKWh != tc.want {
			t.Fatalf("score %v: got price %v, want %v", tc.score, quote.PricePerKWh, tc.want)
		}
	}
}

func TestCurrentPriceEmbedsDemandPayload(t *testing.T) {
	payload := `{"demand_score":0.5,"demand_description":"Shoulder","timestamp":"2025-06-01T12:00:00Z"}`
	stub := demandStub(t, http.StatusOK, payload)

	quote, err := newService(stub.URL).CurrentPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(quote.BasedOnDemand) != payload {
		t.Fatalf("demand payload not passed through verbatim: %s", quote.BasedOnDemand)
	}
}

func TestCurrentPriceDefaultsMissingScore(t *testing.T) {
	stub := demandStub(t, http.StatusOK, `{"demand_description":"Shoulder"}`)

	quote, err := newService(stub.URL).CurrentPrice(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.PricePerKWh != 0.45 {
		t.Fatalf("expected fallback score 0.5 pricing to 0.45, got %v", quote.PricePerKWh)
	}
}

func TestCurrentPriceUpstreamFailure(t *testing.T) {
	stub := demandStub(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := newService(stub.URL).CurrentPrice(context.Background())
	if !errors.Is(err, ErrDemandUnavailable) {
		t.Fatalf("expected ErrDemandUnavailable for non-2xx, got %v", err)
	}
}

func TestCurrentPriceNetworkFailure(t *testing.T) {
	stub := demandStub(t, http.StatusOK, `{}`)
	url := stub.URL
	stub.Close()

	_, err := newService(url).CurrentPrice(context.Background())
	if !errors.Is(err, ErrDemandUnavailable) {
		t.Fatalf("expected ErrDemandUnavailable for network error, got %v", err)
	}
}

func TestRound4(t *testing.T) {
	if got := round4(0.123456); got != 0.1235 {
		t.Fatalf("round4(0.123456) = %v", got)
	}
	if got := round4(0.20 + 0.5*0.50); got != 0.45 {
		t.Fatalf("round4 formula = %v", got)
	}
}
