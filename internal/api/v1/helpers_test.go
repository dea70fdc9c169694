package api

import (
	"net/http"
	"net/http/httptest"

	"github.com/hashicorp/go-hclog"

	"github.com/saasbridge/saasbridge/internal/config"
	"github.com/saasbridge/saasbridge/internal/server"
)

// newTestServer builds a Server with a null logger and no vendors; tests
// attach the clients they need.
func newTestServer() server.Server {
	return server.Server{
		Config: &config.Config{Server: &config.Server{Addr: "127.0.0.1:0"}},
		Logger: hclog.NewNullLogger(),
	}
}

// serveWithPattern runs a request through a mux so Request.PathValue
// resolves the same way it does in production.
func serveWithPattern(pattern string, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, h)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}
