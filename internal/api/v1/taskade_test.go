package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saasbridge/saasbridge/pkg/providers/taskade"
)

func TestTaskadeCompleteTaskHandler(t *testing.T) {
	t.Run("ForwardsBothPathValues", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/projects/p1/tasks/t1/complete", r.URL.Path)
				assert.Equal(t, "Bearer tk-token", r.Header.Get("Authorization"))

				fmt.Fprint(w, `{"ok":true}`)
			}))
		defer upstream.Close()

		srv := newTestServer()
		srv.Taskade = taskade.NewClient(taskade.Config{
			APIKey:  "tk-token",
			BaseURL: upstream.URL,
			Timeout: 5 * time.Second,
		})

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/taskade/projects/p1/tasks/t1/complete", nil)
		w := serveWithPattern(
			"/api/v1/taskade/projects/{project}/tasks/{task}/complete",
			TaskadeCompleteTaskHandler(srv), req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("DisabledVendorReturns503", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/taskade/projects/p1/tasks/t1/complete", nil)
		w := serveWithPattern(
			"/api/v1/taskade/projects/{project}/tasks/{task}/complete",
			TaskadeCompleteTaskHandler(srv), req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})

	t.Run("UnsupportedMethodReturns405", func(t *testing.T) {
		srv := newTestServer()
		srv.Taskade = taskade.NewClient(taskade.Config{
			APIKey: "tk-token", BaseURL: "http://127.0.0.1:1", Timeout: time.Second,
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/taskade/projects/p1/tasks/t1/complete", nil)
		w := serveWithPattern(
			"/api/v1/taskade/projects/{project}/tasks/{task}/complete",
			TaskadeCompleteTaskHandler(srv), req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
