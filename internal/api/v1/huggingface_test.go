package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbridge/saasbridge/pkg/providers/huggingface"
)

func TestHuggingFaceInferenceHandler(t *testing.T) {
	t.Run("SlashedModelIDSurvivesRouting", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				// The {model...} wildcard must deliver "org/model" whole.
				assert.Equal(t, "/models/google/flan-t5-small", r.URL.Path)
				assert.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))

				fmt.Fprint(w, `[{"generated_text":"bonjour"}]`)
			}))
		defer upstream.Close()

		srv := newTestServer()
		srv.HuggingFace = huggingface.NewClient(huggingface.Config{
			APIKey:           "hf-token",
			InferenceBaseURL: upstream.URL,
			Timeout:          5 * time.Second,
		})

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/huggingface/inference/google/flan-t5-small",
			strings.NewReader(`{"inputs":"translate: hello"}`))
		w := serveWithPattern("/api/v1/huggingface/inference/{model...}",
			HuggingFaceInferenceHandler(srv), req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("DisabledVendorReturns503", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/huggingface/inference/google/flan-t5-small",
			strings.NewReader(`{"inputs":"hi"}`))
		w := serveWithPattern("/api/v1/huggingface/inference/{model...}",
			HuggingFaceInferenceHandler(srv), req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})

	t.Run("UnsupportedMethodReturns405", func(t *testing.T) {
		srv := newTestServer()
		srv.HuggingFace = huggingface.NewClient(huggingface.Config{
			APIKey: "hf-token", InferenceBaseURL: "http://127.0.0.1:1",
			Timeout: time.Second,
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/huggingface/inference/google/flan-t5-small", nil)
		w := serveWithPattern("/api/v1/huggingface/inference/{model...}",
			HuggingFaceInferenceHandler(srv), req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHuggingFaceModelHandler(t *testing.T) {
	t.Run("ForwardsToHubAPI", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/models/google/flan-t5-small", r.URL.Path)
				fmt.Fprint(w, `{"id":"google/flan-t5-small"}`)
			}))
		defer upstream.Close()

		srv := newTestServer()
		srv.HuggingFace = huggingface.NewClient(huggingface.Config{
			APIKey:     "hf-token",
			HubBaseURL: upstream.URL,
			Timeout:    5 * time.Second,
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/huggingface/models/google/flan-t5-small", nil)
		w := serveWithPattern("/api/v1/huggingface/models/{model...}",
			HuggingFaceModelHandler(srv), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "flan-t5-small")
	})
}
