package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Run("DecodesVendorBlocks", func(t *testing.T) {
		path := writeConfigFile(t, `
server {
  addr = "127.0.0.1:9000"
}

cloudflare {
  api_key = "cf-token"
  timeout = "10s"
}

gitlab {
  api_key  = "glpat-token"
  base_url = "https://gitlab.example.com/api/v4"
}
`)

		cfg, err := NewConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
		require.NotNil(t, cfg.Cloudflare)
		assert.Equal(t, "cf-token", cfg.Cloudflare.APIKey)
		assert.Equal(t, 10*time.Second, cfg.Cloudflare.UpstreamTimeout())
		require.NotNil(t, cfg.GitLab)
		assert.Equal(t, "https://gitlab.example.com/api/v4", cfg.GitLab.BaseURL)
		assert.True(t, cfg.Cloudflare.Enabled())
		assert.False(t, cfg.Taskade.Enabled())
	})

	t.Run("EmptyPathUsesEnvironmentOnly", func(t *testing.T) {
		t.Setenv("TASKADE_API_KEY", "tk-token")
		t.Setenv("GEMINI_API_KEY", "gm-token")
		t.Setenv("CLOUDFLARE_API_KEY", "")

		cfg, err := NewConfig("")
		require.NoError(t, err)

		assert.Equal(t, DefaultAddr, cfg.Server.Addr)
		require.NotNil(t, cfg.Taskade)
		assert.Equal(t, "tk-token", cfg.Taskade.APIKey)
		require.NotNil(t, cfg.Gemini)
		assert.Equal(t, "gm-token", cfg.Gemini.APIKey)
		assert.Nil(t, cfg.Cloudflare)
	})

	t.Run("FileCredentialWinsOverEnvironment", func(t *testing.T) {
		t.Setenv("CLOUDFLARE_API_KEY", "from-env")

		path := writeConfigFile(t, `
cloudflare {
  api_key = "from-file"
}
`)

		cfg, err := NewConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Cloudflare.APIKey)
	})

	t.Run("EnvironmentFillsMissingCredential", func(t *testing.T) {
		t.Setenv("GITLAB_API_KEY", "from-env")

		path := writeConfigFile(t, `
gitlab {
  base_url = "https://gitlab.example.com/api/v4"
}
`)

		cfg, err := NewConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.GitLab.APIKey)
		assert.True(t, cfg.GitLab.Enabled())
	})

	t.Run("GoogleCredentialsFromEnvironment", func(t *testing.T) {
		t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/sa.json")

		cfg, err := NewConfig("")
		require.NoError(t, err)
		require.NotNil(t, cfg.GoogleDocs)
		assert.Equal(t, "/tmp/sa.json", cfg.GoogleDocs.CredentialsFile)
		assert.True(t, cfg.GoogleDocs.Enabled())
	})

	t.Run("MissingFileErrors", func(t *testing.T) {
		_, err := NewConfig(filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg, err := NewConfig("")
		require.NoError(t, err)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("AggregatesAllProblems", func(t *testing.T) {
		path := writeConfigFile(t, `
cloudflare {
  api_key  = "cf-token"
  base_url = "not a url"
  timeout  = "soon"
}
`)

		cfg, err := NewConfig(path)
		require.NoError(t, err)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cloudflare base_url is invalid")
		assert.Contains(t, err.Error(), "cloudflare timeout is invalid")
	})
}

func TestUpstreamTimeoutDefaults(t *testing.T) {
	var v *VendorConfig
	assert.Equal(t, DefaultUpstreamTimeout, v.UpstreamTimeout())

	v = &VendorConfig{Timeout: "bogus"}
	assert.Equal(t, DefaultUpstreamTimeout, v.UpstreamTimeout())

	v = &VendorConfig{Timeout: "5s"}
	assert.Equal(t, 5*time.Second, v.UpstreamTimeout())
}
