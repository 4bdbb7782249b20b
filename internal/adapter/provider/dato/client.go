// Package dato is the HTTP adapter for the DatoCMS Content Management API.
// It maps JSON:API documents onto domain types and API failures onto domain
// sentinel errors; it never retries.
package dato

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/cms-blame/internal/config"
)

const (
	apiVersion   = "3"
	maxErrorBody = 512
)

// Client talks to one DatoCMS project with a single API token.
type Client struct {
	baseURL     string
	token       string
	environment string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from the CMS configuration.
func NewClient(cfg config.CMSConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		token:       cfg.APIToken,
		environment: cfg.Environment,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "dato"),
	}
}

// Ping checks that the API answers with the configured token.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/site", nil, nil, nil)
}

// do sends one request and decodes a 2xx JSON body into dest (if non-nil).
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("dato: encode %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("dato: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}
	if c.environment != "" {
		req.Header.Set("X-Environment", c.environment)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dato: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("dato: read body: %w", err)
	}

	c.log.DebugContext(ctx, "dato response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("dato: decode %s: %w", path, err)
	}
	return nil
}
