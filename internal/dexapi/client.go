// Package dexapi fetches pool statistics from the exchange data API.
package dexapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// ErrInvalidShape reports an upstream body whose pools value is missing or
// not an array.
var ErrInvalidShape = errors.New("upstream response has no pools array")

const defaultTimeout = 30 * time.Second

// Client fetches pool statistics over HTTP. Every request is attempt-once;
// a failed fetch fails the whole run.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("api url is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// poolsEnvelope defers decoding of the pools value so a missing or non-array
// value can be told apart from a transport or JSON error.
type poolsEnvelope struct {
	Pools json.RawMessage `json:"pools"`
}

// FetchPools performs one GET against the pools endpoint and decodes the
// pools array. Individual pool fields decode best-effort; the shape of the
// envelope does not.
func (c *Client) FetchPools(ctx context.Context) ([]model.PoolStat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pools: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch pools: status %d: %s", resp.StatusCode, truncate(body))
	}

	var envelope poolsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Pools) == 0 || string(envelope.Pools) == "null" {
		return nil, ErrInvalidShape
	}

	var pools []model.PoolStat
	if err := json.Unmarshal(envelope.Pools, &pools); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return pools, nil
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
