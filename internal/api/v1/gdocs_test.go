package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/saasbridge/saasbridge/pkg/providers/gdocs"
)

// newGoogleDocsService points the Docs/Drive clients at a fake endpoint.
func newGoogleDocsService(t *testing.T, ts *httptest.Server) *gdocs.Service {
	t.Helper()

	svc, err := gdocs.NewService(context.Background(), gdocs.Config{},
		option.WithoutAuthentication(),
		option.WithEndpoint(ts.URL))
	require.NoError(t, err)
	return svc
}

func TestGoogleDocsDocumentHandler(t *testing.T) {
	t.Run("GetPassesDocumentID", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Contains(t, r.URL.Path, "/documents/doc123")

				fmt.Fprint(w, `{"documentId":"doc123","title":"Launch plan"}`)
			}))
		defer upstream.Close()

		srv := newTestServer()
		srv.GoogleDocs = newGoogleDocsService(t, upstream)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gdocs/documents/doc123", nil)
		w := serveWithPattern(
			"/api/v1/gdocs/documents/{doc}", GoogleDocsDocumentHandler(srv), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Launch plan")
	})

	t.Run("DisabledVendorReturns503", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gdocs/documents/doc123", nil)
		w := serveWithPattern(
			"/api/v1/gdocs/documents/{doc}", GoogleDocsDocumentHandler(srv), req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "not configured")
	})
}

func TestGoogleDocsDocumentsHandler(t *testing.T) {
	t.Run("CreateRequiresTitle", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				t.Error("upstream should not be called")
			}))
		defer upstream.Close()

		srv := newTestServer()
		srv.GoogleDocs = newGoogleDocsService(t, upstream)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/gdocs/documents",
			strings.NewReader(`{}`))
		w := serveWithPattern(
			"/api/v1/gdocs/documents", GoogleDocsDocumentsHandler(srv), req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title")
	})

	t.Run("UnsupportedMethodReturns405", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {}))
		defer upstream.Close()

		srv := newTestServer()
		srv.GoogleDocs = newGoogleDocsService(t, upstream)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/gdocs/documents", nil)
		w := serveWithPattern(
			"/api/v1/gdocs/documents", GoogleDocsDocumentsHandler(srv), req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
