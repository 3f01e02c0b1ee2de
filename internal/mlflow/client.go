// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package mlflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wisata/internal/config"
	"github.com/tomtom215/wisata/internal/metrics"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client calls the MLflow REST API through a circuit breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
	name       string
}

// NewClient creates a client for the configured tracking server.
func NewClient(cfg config.MLflowConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.TrackingURI, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         newBreaker(breakerName),
		name:       breakerName,
	}
}

// BaseURL returns the tracking server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// callJSON sends in as a JSON body (when non-nil) and decodes the response into out.
func (c *Client) callJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return fmt.Errorf("mlflow: encode request: %w", err)
		}
	}

	data, err := c.execute(ctx, method, path, query, "application/json", body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("mlflow: decode %s response: %w", path, err)
	}
	return nil
}

// execute runs one request under the circuit breaker.
func (c *Client) execute(ctx context.Context, method, path string, query url.Values, contentType string, body []byte) ([]byte, error) {
	data, err := c.cb.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, path, query, contentType, body)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(c.name, "rejected")
	case isSuccessful(err):
		metrics.RecordCircuitBreakerRequest(c.name, "success")
	default:
		metrics.RecordCircuitBreakerRequest(c.name, "failure")
	}
	return data, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, contentType string, body []byte) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("mlflow: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mlflow: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("mlflow: read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		apiErr.StatusCode = resp.StatusCode
		return nil, apiErr
	}

	return data, nil
}
