// Package cloudflare wraps the Cloudflare v4 REST API. Responses are
// unwrapped to the vendor's "result" field; everything else passes through
// untouched.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// DefaultBaseURL is the public Cloudflare API endpoint.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Config holds the client configuration.
type Config struct {
	// APIKey is the Cloudflare API token, sent as a bearer token.
	APIKey string

	// BaseURL overrides the API endpoint (tests, API gateways).
	BaseURL string

	// Timeout for upstream requests.
	Timeout time.Duration
}

// Client is a thin pass-through client for the Cloudflare API.
type Client struct {
	rc *resty.Client
}

// NewClient creates a Cloudflare client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := providers.NewRestyClient(cfg.BaseURL, cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{rc: rc}
}

// ListZones lists zones. The inbound query string (page, per_page, name,
// etc.) is forwarded verbatim.
func (c *Client) ListZones(ctx context.Context, query url.Values) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get("/zones")
	if err != nil {
		return nil, fmt.Errorf("cloudflare list zones request: %w", err)
	}
	return providers.Field(resp, "result")
}

// GetZone returns a single zone.
func (c *Client) GetZone(ctx context.Context, zoneID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		Get("/zones/{zone}")
	if err != nil {
		return nil, fmt.Errorf("cloudflare get zone request: %w", err)
	}
	return providers.Field(resp, "result")
}

// ListDNSRecords lists DNS records for a zone, forwarding the inbound
// query string.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string, query url.Values) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		SetQueryParamsFromValues(query).
		Get("/zones/{zone}/dns_records")
	if err != nil {
		return nil, fmt.Errorf("cloudflare list dns records request: %w", err)
	}
	return providers.Field(resp, "result")
}

// CreateDNSRecord creates a DNS record. The payload is the caller's JSON
// body, forwarded untouched.
func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post("/zones/{zone}/dns_records")
	if err != nil {
		return nil, fmt.Errorf("cloudflare create dns record request: %w", err)
	}
	return providers.Field(resp, "result")
}

// UpdateDNSRecord overwrites a DNS record.
func (c *Client) UpdateDNSRecord(ctx context.Context, zoneID, recordID string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		SetPathParam("record", recordID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Put("/zones/{zone}/dns_records/{record}")
	if err != nil {
		return nil, fmt.Errorf("cloudflare update dns record request: %w", err)
	}
	return providers.Field(resp, "result")
}

// DeleteDNSRecord deletes a DNS record.
func (c *Client) DeleteDNSRecord(ctx context.Context, zoneID, recordID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		SetPathParam("record", recordID).
		Delete("/zones/{zone}/dns_records/{record}")
	if err != nil {
		return nil, fmt.Errorf("cloudflare delete dns record request: %w", err)
	}
	return providers.Field(resp, "result")
}

// PurgeCache purges the zone cache. The payload selects what to purge
// (e.g. {"purge_everything": true}) and is forwarded untouched.
func (c *Client) PurgeCache(ctx context.Context, zoneID string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("zone", zoneID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post("/zones/{zone}/purge_cache")
	if err != nil {
		return nil, fmt.Errorf("cloudflare purge cache request: %w", err)
	}
	return providers.Field(resp, "result")
}
