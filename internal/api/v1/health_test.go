package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbridge/saasbridge/pkg/providers/cloudflare"
)

func TestHealthHandler(t *testing.T) {
	t.Run("ReportsEnabledVendors", func(t *testing.T) {
		srv := newTestServer()
		srv.Cloudflare = cloudflare.NewClient(cloudflare.Config{
			APIKey: "cf-token", Timeout: time.Second,
		})

		w := httptest.NewRecorder()
		HealthHandler(srv).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool           `json:"success"`
			Data    HealthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ok", resp.Data.Status)
		assert.True(t, resp.Data.Vendors["cloudflare"])
		assert.False(t, resp.Data.Vendors["gitlab"])
		assert.False(t, resp.Data.Vendors["google_docs"])
	})

	t.Run("RejectsPost", func(t *testing.T) {
		srv := newTestServer()

		w := httptest.NewRecorder()
		HealthHandler(srv).ServeHTTP(w,
			httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
