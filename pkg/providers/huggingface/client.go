// Package huggingface wraps the Hugging Face serverless inference API and
// the Hub model-metadata API.
package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

const (
	// DefaultInferenceBaseURL is the serverless inference endpoint.
	DefaultInferenceBaseURL = "https://api-inference.huggingface.co"

	// DefaultHubBaseURL is the Hub API endpoint for model metadata.
	DefaultHubBaseURL = "https://huggingface.co"
)

// Config holds the client configuration.
type Config struct {
	// APIKey is the Hugging Face access token, sent as a bearer token.
	APIKey string

	// InferenceBaseURL overrides the inference endpoint.
	InferenceBaseURL string

	// HubBaseURL overrides the Hub endpoint.
	HubBaseURL string

	// Timeout for upstream requests. Inference calls can take a while on
	// cold models, so this applies per request, not per connection.
	Timeout time.Duration
}

// Client is a thin pass-through client for Hugging Face.
type Client struct {
	inference *resty.Client
	hub       *resty.Client
}

// NewClient creates a Hugging Face client.
func NewClient(cfg Config) *Client {
	if cfg.InferenceBaseURL == "" {
		cfg.InferenceBaseURL = DefaultInferenceBaseURL
	}
	if cfg.HubBaseURL == "" {
		cfg.HubBaseURL = DefaultHubBaseURL
	}

	return &Client{
		inference: providers.NewRestyClient(cfg.InferenceBaseURL, cfg.Timeout).
			SetAuthToken(cfg.APIKey),
		hub: providers.NewRestyClient(cfg.HubBaseURL, cfg.Timeout).
			SetAuthToken(cfg.APIKey),
	}
}

// Inference runs a model with the caller's JSON payload forwarded
// untouched. Model IDs may contain a slash ("org/model"), which stays
// unescaped in the path.
func (c *Client) Inference(ctx context.Context, model string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.inference.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post("/models/" + model)
	if err != nil {
		return nil, fmt.Errorf("huggingface inference request: %w", err)
	}
	return providers.Raw(resp)
}

// GetModel returns Hub metadata for a model.
func (c *Client) GetModel(ctx context.Context, model string) (json.RawMessage, error) {
	resp, err := c.hub.R().
		SetContext(ctx).
		Get("/api/models/" + model)
	if err != nil {
		return nil, fmt.Errorf("huggingface get model request: %w", err)
	}
	return providers.Raw(resp)
}
