package config

import (
	"github.com/caarlos0/env/v11"
)

// envCredentials mirrors the environment variables that carry vendor
// credentials. Environment values only fill in credentials the config file
// left empty, so an explicit api_key in HCL wins.
type envCredentials struct {
	CloudflareAPIKey      string `env:"CLOUDFLARE_API_KEY"`
	HuggingFaceAPIKey     string `env:"HUGGINGFACE_API_KEY"`
	GitLabAPIKey          string `env:"GITLAB_API_KEY"`
	GeminiAPIKey          string `env:"GEMINI_API_KEY"`
	TaskadeAPIKey         string `env:"TASKADE_API_KEY"`
	GoogleCredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	AuthTokenSecret string `env:"SAASBRIDGE_AUTH_TOKEN_SECRET"`
}

func applyEnvCredentials(cfg *Config) error {
	var creds envCredentials
	if err := env.Parse(&creds); err != nil {
		return err
	}

	if creds.CloudflareAPIKey != "" {
		if cfg.Cloudflare == nil {
			cfg.Cloudflare = &VendorConfig{}
		}
		if cfg.Cloudflare.APIKey == "" {
			cfg.Cloudflare.APIKey = creds.CloudflareAPIKey
		}
	}
	if creds.HuggingFaceAPIKey != "" {
		if cfg.HuggingFace == nil {
			cfg.HuggingFace = &HuggingFaceConfig{}
		}
		if cfg.HuggingFace.APIKey == "" {
			cfg.HuggingFace.APIKey = creds.HuggingFaceAPIKey
		}
	}
	if creds.GitLabAPIKey != "" {
		if cfg.GitLab == nil {
			cfg.GitLab = &VendorConfig{}
		}
		if cfg.GitLab.APIKey == "" {
			cfg.GitLab.APIKey = creds.GitLabAPIKey
		}
	}
	if creds.GeminiAPIKey != "" {
		if cfg.Gemini == nil {
			cfg.Gemini = &VendorConfig{}
		}
		if cfg.Gemini.APIKey == "" {
			cfg.Gemini.APIKey = creds.GeminiAPIKey
		}
	}
	if creds.TaskadeAPIKey != "" {
		if cfg.Taskade == nil {
			cfg.Taskade = &VendorConfig{}
		}
		if cfg.Taskade.APIKey == "" {
			cfg.Taskade.APIKey = creds.TaskadeAPIKey
		}
	}
	if creds.GoogleCredentialsFile != "" {
		if cfg.GoogleDocs == nil {
			cfg.GoogleDocs = &GoogleDocsConfig{}
		}
		if cfg.GoogleDocs.CredentialsFile == "" {
			cfg.GoogleDocs.CredentialsFile = creds.GoogleCredentialsFile
		}
	}
	if creds.AuthTokenSecret != "" {
		if cfg.Server == nil {
			cfg.Server = &Server{}
		}
		if cfg.Server.AuthTokenSecret == "" {
			cfg.Server.AuthTokenSecret = creds.AuthTokenSecret
		}
	}

	return nil
}
