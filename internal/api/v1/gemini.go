package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/saasbridge/saasbridge/internal/server"
)

// GeminiModelsHandler handles /api/v1/gemini/models.
func GeminiModelsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Gemini == nil {
			respondVendorDisabled(w, srv.Logger, "gemini")
			return
		}

		if r.Method != http.MethodGet {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		result, err := srv.Gemini.ListModels(r.Context())
		if err != nil {
			respondUpstreamError(w, srv.Logger, "gemini", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}

// GeminiGenerateHandler handles /api/v1/gemini/models/{model}/generate.
// The JSON body (contents, generationConfig, safetySettings, ...) is
// forwarded untouched.
func GeminiGenerateHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Gemini == nil {
			respondVendorDisabled(w, srv.Logger, "gemini")
			return
		}

		if r.Method != http.MethodPost {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		model := r.PathValue("model")
		if err := validation.Validate(model, validation.Required); err != nil {
			respondError(w, srv.Logger, http.StatusBadRequest,
				"model is required")
			return
		}

		payload, err := readJSONBody(r)
		if err != nil {
			srv.Logger.Error("error reading generate payload", "error", err)
			respondBodyError(w, srv.Logger, err)
			return
		}

		result, err := srv.Gemini.GenerateContent(r.Context(), model, payload)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "gemini", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}
