package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrNotConfigured = errors.New("distance matrix API is not configured")
	ErrNoRoute       = errors.New("no route found between addresses")
)

// MatrixClientConfig holds the configuration for the distance matrix client
type MatrixClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// MatrixClient resolves driving distances through a Google-style distance
// matrix HTTP API. It implements geo.DistanceProvider.
type MatrixClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewMatrixClient creates a new distance matrix client
func NewMatrixClient(cfg MatrixClientConfig) *MatrixClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &MatrixClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsConfigured checks if the client has an API key
func (c *MatrixClient) IsConfigured() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// matrixResponse mirrors the distance matrix API wire format
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// LookupDistanceKm resolves the driving distance between two addresses.
// Any upstream failure, ambiguous address or empty result is an error;
// the caller decides whether to retry.
func (c *MatrixClient) LookupDistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	if !c.IsConfigured() {
		return 0, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("units", "metric")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("distance matrix API status %d: %s", resp.StatusCode, string(body))
	}

	var result matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}

	if result.Status != "OK" {
		return 0, fmt.Errorf("distance matrix API returned status %q", result.Status)
	}
	if len(result.Rows) == 0 || len(result.Rows[0].Elements) == 0 {
		return 0, ErrNoRoute
	}

	element := result.Rows[0].Elements[0]
	if element.Status != "OK" || element.Distance.Value <= 0 {
		return 0, ErrNoRoute
	}

	return float64(element.Distance.Value) / 1000, nil
}
