package api

import (
	"net/http"

	"github.com/saasbridge/saasbridge/internal/server"
)

// HealthResponse reports gateway liveness and which vendors are enabled.
type HealthResponse struct {
	Status  string          `json:"status"`
	Vendors map[string]bool `json:"vendors"`
}

// HealthHandler reports gateway health. It never touches an upstream.
func HealthHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		respondJSON(w, srv.Logger, HealthResponse{
			Status: "ok",
			Vendors: map[string]bool{
				"cloudflare":  srv.Cloudflare != nil,
				"huggingface": srv.HuggingFace != nil,
				"google_docs": srv.GoogleDocs != nil,
				"gitlab":      srv.GitLab != nil,
				"gemini":      srv.Gemini != nil,
				"taskade":     srv.Taskade != nil,
			},
		})
	})
}
