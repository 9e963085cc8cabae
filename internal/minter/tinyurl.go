package minter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abinbabu/url-shortener/internal/shortener"
)

// DefaultTimeout bounds a single minting call. The provider call is the
// only blocking network dependency inside creation, so it never runs
// unbounded; expiry surfaces as a failed creation.
const DefaultTimeout = 10 * time.Second

// TinyURL mints short URLs through a TinyURL-compatible HTTP API.
type TinyURL struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewTinyURL creates a minter for the given provider endpoint and API
// credential. A non-positive timeout falls back to DefaultTimeout.
func NewTinyURL(endpoint, apiKey string, timeout time.Duration) *TinyURL {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &TinyURL{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type mintRequest struct {
	URL string `json:"url"`
}

type mintResponse struct {
	Data struct {
		TinyURL string `json:"tiny_url"`
	} `json:"data"`
}

// Mint requests a short URL for originalURL. Exactly one provider call is
// made per invocation; retrying is the caller's responsibility.
func (t *TinyURL) Mint(ctx context.Context, originalURL string) (string, error) {
	body, err := json.Marshal(mintRequest{URL: originalURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling minting provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("minting provider returned status %d", resp.StatusCode)
	}

	var payload mintResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding provider response: %w", err)
	}

	if payload.Data.TinyURL == "" {
		return "", errors.New("provider response missing tiny_url")
	}

	return payload.Data.TinyURL, nil
}

// Compile-time check.
var _ shortener.Minter = (*TinyURL)(nil)
