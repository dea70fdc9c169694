// Package taskade wraps the Taskade REST API.
package taskade

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// DefaultBaseURL is the public Taskade API endpoint.
const DefaultBaseURL = "https://www.taskade.com/api/v1"

// Config holds the client configuration.
type Config struct {
	// APIKey is the Taskade personal access token, sent as a bearer token.
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Timeout for upstream requests.
	Timeout time.Duration
}

// Client is a thin pass-through client for the Taskade API.
type Client struct {
	rc *resty.Client
}

// NewClient creates a Taskade client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := providers.NewRestyClient(cfg.BaseURL, cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{rc: rc}
}

// ListWorkspaces lists the workspaces visible to the token.
func (c *Client) ListWorkspaces(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		Get("/workspaces")
	if err != nil {
		return nil, fmt.Errorf("taskade list workspaces request: %w", err)
	}
	return providers.Raw(resp)
}

// ListProjects lists the projects in a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("workspace", workspaceID).
		Get("/workspaces/{workspace}/projects")
	if err != nil {
		return nil, fmt.Errorf("taskade list projects request: %w", err)
	}
	return providers.Raw(resp)
}

// ListTasks lists the tasks in a project.
func (c *Client) ListTasks(ctx context.Context, projectID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		Get("/projects/{project}/tasks")
	if err != nil {
		return nil, fmt.Errorf("taskade list tasks request: %w", err)
	}
	return providers.Raw(resp)
}

// CreateTask creates tasks in a project with the caller's JSON payload
// forwarded untouched.
func (c *Client) CreateTask(ctx context.Context, projectID string, payload json.RawMessage) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(payload)).
		Post("/projects/{project}/tasks")
	if err != nil {
		return nil, fmt.Errorf("taskade create task request: %w", err)
	}
	return providers.Raw(resp)
}

// CompleteTask marks a task complete.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("project", projectID).
		SetPathParam("task", taskID).
		Post("/projects/{project}/tasks/{task}/complete")
	if err != nil {
		return nil, fmt.Errorf("taskade complete task request: %w", err)
	}
	return providers.Raw(resp)
}
