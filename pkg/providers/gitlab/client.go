// Package gitlab wraps the GitLab v4 REST API. GitLab answers with bare
// JSON arrays/objects, so responses pass through without unwrapping.
package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// DefaultBaseURL is the gitlab.com API endpoint. Self-hosted instances
// override it via config.
const DefaultBaseURL = "https://gitlab.com/api/v4"

// Config holds the client configuration.
type Config struct {
	// APIKey is the personal/project access token, sent as PRIVATE-TOKEN.
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Timeout for upstream requests.
	Timeout time.Duration
}

// Client is a thin pass-through client for the GitLab API.
type Client struct {
	rc *resty.Client
}

// NewClient creates a GitLab client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := providers.NewRestyClient(cfg.BaseURL, cfg.Timeout).
		SetHeader("PRIVATE-TOKEN", cfg.APIKey)

	return &Client{rc: rc}
}

// ListProjects lists projects visible to the token, forwarding the
// inbound query string (membership, search, pagination, ...).
func (c *Client) ListProjects(ctx context.Context, query url.Values) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("gitlab list projects request: %w", err)
	}
	return providers.Raw(resp)
}

// GetProject returns a single project. The ID may be numeric or a
// URL-encoded "namespace/project" path, which GitLab accepts either way.
func (c *Client) GetProject(ctx context.Context, projectID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		Get("/projects/{project}")
	if err != nil {
		return nil, fmt.Errorf("gitlab get project request: %w", err)
	}
	return providers.Raw(resp)
}

// ListIssues lists a project's issues, forwarding the inbound query
// string.
func (c *Client) ListIssues(ctx context.Context, projectID string, query url.Values) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		SetQueryParamsFromValues(query).
		Get("/projects/{project}/issues")
	if err != nil {
		return nil, fmt.Errorf("gitlab list issues request: %w", err)
	}
	return providers.Raw(resp)
}

// CreateIssue creates an issue with the caller's JSON payload forwarded
// untouched.
func (c *Client) CreateIssue(ctx context.Context, projectID string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post("/projects/{project}/issues")
	if err != nil {
		return nil, fmt.Errorf("gitlab create issue request: %w", err)
	}
	return providers.Raw(resp)
}

// ListMergeRequests lists a project's merge requests, forwarding the
// inbound query string.
func (c *Client) ListMergeRequests(ctx context.Context, projectID string, query url.Values) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		SetQueryParamsFromValues(query).
		Get("/projects/{project}/merge_requests")
	if err != nil {
		return nil, fmt.Errorf("gitlab list merge requests request: %w", err)
	}
	return providers.Raw(resp)
}
