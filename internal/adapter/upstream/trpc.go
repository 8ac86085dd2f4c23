// Package upstream implements the outbound client for the waitlist
// signup tRPC endpoint.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClientConfig holds the configuration for the signup endpoint.
type ClientConfig struct {
	URL     string        // full endpoint URL including the ?batch=1 suffix
	Source  string        // value for the x-trpc-source header
	Timeout time.Duration // bounded timeout; the upstream is known to stall
}

// TRPCClient implements port.SignupClient against a tRPC batch endpoint
// that responds with newline-delimited JSON.
type TRPCClient struct {
	cfg        ClientConfig
	httpClient *http.Client
}

// NewTRPCClient creates a new signup client.
func NewTRPCClient(cfg ClientConfig) *TRPCClient {
	return &TRPCClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Signup submits the email and returns the upstream status and raw body.
// The payload shape matches the captured browser request exactly.
func (c *TRPCClient) Signup(ctx context.Context, email string) (int, string, error) {
	payload := map[string]any{
		"0": map[string]any{
			"json": map[string]string{"email": email},
		},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("signup: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("trpc-accept", "application/jsonl")
	req.Header.Set("x-trpc-source", c.cfg.Source)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("signup: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("signup: read body: %w", err)
	}

	return resp.StatusCode, string(respBody), nil
}
