// Package gemini wraps the Gemini (Generative Language) REST API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// DefaultBaseURL is the public Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config holds the client configuration.
type Config struct {
	// APIKey is the Gemini API key, sent via the x-goog-api-key header.
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Timeout for upstream requests.
	Timeout time.Duration
}

// Client is a thin pass-through client for the Gemini API.
type Client struct {
	rc *resty.Client
}

// NewClient creates a Gemini client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := providers.NewRestyClient(cfg.BaseURL, cfg.Timeout).
		SetHeader("x-goog-api-key", cfg.APIKey)

	return &Client{rc: rc}
}

// ListModels lists available models.
func (c *Client) ListModels(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		Get("/models")
	if err != nil {
		return nil, fmt.Errorf("gemini list models request: %w", err)
	}
	return providers.Raw(resp)
}

// GenerateContent runs a model with the caller's JSON payload (contents,
// generationConfig, ...) forwarded untouched.
func (c *Client) GenerateContent(ctx context.Context, model string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post(fmt.Sprintf("/models/%s:generateContent", url.PathEscape(model)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content request: %w", err)
	}
	return providers.Raw(resp)
}
