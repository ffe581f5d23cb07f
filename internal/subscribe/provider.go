package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Provider delivers a validated subscriber to the configured backend
// (Encharge-style HTTP endpoint in production, a fake in tests).
type Provider interface {
	Add(ctx context.Context, sub Subscriber) error
}

type Subscriber struct {
	Email    string            `json:"email"`
	Name     string            `json:"name,omitempty"`
	IP       string            `json:"ip,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// HTTPProvider posts subscribers as JSON to a provider URL with an API key
// header.
type HTTPProvider struct {
	url    string
	apiKey string
	hc     *http.Client
}

func NewHTTPProvider(url, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		apiKey: apiKey,
		hc:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Add(ctx context.Context, sub Subscriber) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("subscribe provider: marshal subscriber: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("subscribe provider: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("X-Encharge-Token", p.apiKey)
	}

	res, err := p.hc.Do(req)
	if err != nil {
		return fmt.Errorf("subscribe provider: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return fmt.Errorf("subscribe provider: status %d", res.StatusCode)
	}
	return nil
}
