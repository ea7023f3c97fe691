package clients

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPDoer defines http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// DemandClient fetches demand estimates from the demand service.
type DemandClient struct {
	baseURL string
	client  HTTPDoer
}

// NewDemandClient builds client with base URL.
func NewDemandClient(baseURL string, client HTTPDoer) *DemandClient {
	return &DemandClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// FetchDemand executes GET /predict/demand and returns status/body.
func (c *DemandClient) FetchDemand(ctx context.Context) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/predict/demand", nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// NewDefaultHTTPClient returns *http.Client with timeout. The timeout is
// deliberate: an unbounded call would let a hung demand service block
// pricing requests indefinitely.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
