package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/saasbridge/saasbridge/internal/server"
)

// HuggingFaceModelHandler handles /api/v1/huggingface/models/{model...}.
// The trailing wildcard keeps the slash in "org/model" IDs intact.
func HuggingFaceModelHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.HuggingFace == nil {
			respondVendorDisabled(w, srv.Logger, "huggingface")
			return
		}

		if r.Method != http.MethodGet {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		model := r.PathValue("model")
		if err := validation.Validate(model, validation.Required); err != nil {
			respondError(w, srv.Logger, http.StatusBadRequest,
				"model is required")
			return
		}

		result, err := srv.HuggingFace.GetModel(r.Context(), model)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "huggingface", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}

// HuggingFaceInferenceHandler handles
// /api/v1/huggingface/inference/{model...}. The JSON body (inputs,
// parameters, options) is forwarded to the inference API untouched.
func HuggingFaceInferenceHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.HuggingFace == nil {
			respondVendorDisabled(w, srv.Logger, "huggingface")
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
			srv.Logger.Error("error reading inference payload", "error", err)
			respondBodyError(w, srv.Logger, err)
			return
		}

		result, err := srv.HuggingFace.Inference(r.Context(), model, payload)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "huggingface", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}
