package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

const (
	// DefaultAddr is the address the gateway listens on when the server
	// block doesn't set one.
	DefaultAddr = "127.0.0.1:8000"

	// DefaultUpstreamTimeout is the per-request timeout for upstream
	// vendor calls when a vendor block doesn't set one.
	DefaultUpstreamTimeout = 30 * time.Second
)

// Config is the gateway configuration, decoded from an HCL file. Every
// vendor block is optional; a vendor without a credential (from config or
// environment) is disabled and its routes answer 503.
type Config struct {
	Server *Server `hcl:"server,block"`

	Cloudflare  *VendorConfig      `hcl:"cloudflare,block"`
	HuggingFace *HuggingFaceConfig `hcl:"huggingface,block"`
	GoogleDocs  *GoogleDocsConfig  `hcl:"google_docs,block"`
	GitLab      *VendorConfig      `hcl:"gitlab,block"`
	Gemini      *VendorConfig      `hcl:"gemini,block"`
	Taskade     *VendorConfig      `hcl:"taskade,block"`
}

// Server configures the HTTP listener.
type Server struct {
	// Addr is the listen address.
	Addr string `hcl:"addr,optional"`

	// AuthTokenSecret, when set, enables inbound bearer-token
	// authentication: every inbound request, /health included, must carry
	// an HMAC-signed JWT verified against this secret.
	AuthTokenSecret string `hcl:"auth_token_secret,optional"`
}

// VendorConfig holds the settings shared by the API-key vendors
// (Cloudflare, GitLab, Gemini, Taskade).
type VendorConfig struct {
	// APIKey is the credential injected into upstream requests. Usually
	// left empty in the file and supplied via environment instead.
	APIKey string `hcl:"api_key,optional"`

	// BaseURL overrides the vendor's default API endpoint.
	BaseURL string `hcl:"base_url,optional"`

	// Timeout is the upstream request timeout, e.g. "30s".
	Timeout string `hcl:"timeout,optional"`
}

// Enabled reports whether a credential is available for the vendor.
func (v *VendorConfig) Enabled() bool {
	return v != nil && v.APIKey != ""
}

// UpstreamTimeout returns the parsed timeout, falling back to the default
// when unset or unparseable.
func (v *VendorConfig) UpstreamTimeout() time.Duration {
	if v == nil || v.Timeout == "" {
		return DefaultUpstreamTimeout
	}
	d, err := time.ParseDuration(v.Timeout)
	if err != nil {
		return DefaultUpstreamTimeout
	}
	return d
}

// HuggingFaceConfig extends the shared vendor settings with the Hub API
// endpoint, which is separate from the inference endpoint.
type HuggingFaceConfig struct {
	APIKey  string `hcl:"api_key,optional"`
	BaseURL string `hcl:"base_url,optional"`
	Timeout string `hcl:"timeout,optional"`

	// HubBaseURL overrides the Hub API endpoint (model metadata).
	HubBaseURL string `hcl:"hub_base_url,optional"`
}

// Enabled reports whether a credential is available.
func (v *HuggingFaceConfig) Enabled() bool {
	return v != nil && v.APIKey != ""
}

// UpstreamTimeout returns the parsed timeout, falling back to the default.
func (v *HuggingFaceConfig) UpstreamTimeout() time.Duration {
	if v == nil || v.Timeout == "" {
		return DefaultUpstreamTimeout
	}
	d, err := time.ParseDuration(v.Timeout)
	if err != nil {
		return DefaultUpstreamTimeout
	}
	return d
}

// GoogleDocsConfig authenticates with a service account instead of an API
// key.
type GoogleDocsConfig struct {
	// CredentialsFile is the path to the service-account JSON key file.
	// Falls back to GOOGLE_APPLICATION_CREDENTIALS.
	CredentialsFile string `hcl:"credentials_file,optional"`

	// Subject is an optional user to impersonate via domain-wide
	// delegation.
	Subject string `hcl:"subject,optional"`
}

// Enabled reports whether service-account credentials are available.
func (g *GoogleDocsConfig) Enabled() bool {
	return g != nil && g.CredentialsFile != ""
}

// NewConfig parses the HCL file at path, fills credentials from the
// environment, and applies defaults. An empty path yields a pure
// environment-driven configuration.
func NewConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	}

	if err := applyEnvCredentials(&cfg); err != nil {
		return nil, fmt.Errorf("error reading credentials from environment: %w", err)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
}

// Validate checks the configuration and aggregates all problems.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server == nil || c.Server.Addr == "" {
		result = multierror.Append(result,
			fmt.Errorf("server addr must be set"))
	}

	vendors := map[string]*VendorConfig{
		"cloudflare": c.Cloudflare,
		"gitlab":     c.GitLab,
		"gemini":     c.Gemini,
		"taskade":    c.Taskade,
	}
	for name, v := range vendors {
		if v == nil {
			continue
		}
		if err := validateVendorSettings(name, v.BaseURL, v.Timeout); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if hf := c.HuggingFace; hf != nil {
		if err := validateVendorSettings(
			"huggingface", hf.BaseURL, hf.Timeout); err != nil {
			result = multierror.Append(result, err)
		}
		if hf.HubBaseURL != "" {
			if _, err := url.ParseRequestURI(hf.HubBaseURL); err != nil {
				result = multierror.Append(result,
					fmt.Errorf("huggingface hub_base_url is invalid: %w", err))
			}
		}
	}

	return result.ErrorOrNil()
}

func validateVendorSettings(name, baseURL, timeout string) error {
	var result *multierror.Error

	if baseURL != "" {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("%s base_url is invalid: %w", name, err))
		}
	}
	if timeout != "" {
		if _, err := time.ParseDuration(timeout); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("%s timeout is invalid: %w", name, err))
		}
	}

	return result.ErrorOrNil()
}
