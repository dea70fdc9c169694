package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// maxRequestBodyBytes caps inbound request bodies. Vendor payloads are
// small JSON documents; anything bigger is a caller mistake.
const maxRequestBodyBytes = 4 << 20

// SuccessResponse is the uniform envelope for successful responses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the uniform envelope for failed responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondJSON writes the success envelope with the given data.
func respondJSON(w http.ResponseWriter, log hclog.Logger, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
	}); err != nil {
		log.Error("error encoding response", "error", err)
	}
}

// respondError writes the error envelope with the given status.
func respondError(w http.ResponseWriter, log hclog.Logger, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   msg,
	}); err != nil {
		log.Error("error encoding error response", "error", err)
	}
}

// respondUpstreamError logs an upstream failure and maps it to a local
// status: the vendor's own status when one came back, 502 for transport
// failures, 500 otherwise. Failures are never retried, only logged and
// propagated.
func respondUpstreamError(w http.ResponseWriter, log hclog.Logger, vendor string, err error) {
	log.Error("upstream request failed", "vendor", vendor, "error", err)

	if ue, ok := providers.AsUpstreamError(err); ok {
		respondError(w, log, ue.StatusCode, ue.Error())
		return
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		respondError(w, log, http.StatusBadGateway,
			fmt.Sprintf("error reaching %s: %v", vendor, err))
		return
	}

	respondError(w, log, http.StatusInternalServerError, err.Error())
}

// respondVendorDisabled answers for a vendor that has no credential
// configured.
func respondVendorDisabled(w http.ResponseWriter, log hclog.Logger, vendor string) {
	respondError(w, log, http.StatusServiceUnavailable,
		fmt.Sprintf("%s is not configured: set its API credential and restart", vendor))
}

// respondMethodNotAllowed answers for an unsupported method on a known
// route.
func respondMethodNotAllowed(w http.ResponseWriter, log hclog.Logger) {
	respondError(w, log, http.StatusMethodNotAllowed, "method not allowed")
}

// respondBodyError answers for a request body that could not be read:
// 413 when the body blew the size cap, 400 otherwise.
func respondBodyError(w http.ResponseWriter, log hclog.Logger, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		respondError(w, log, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", maxRequestBodyBytes))
		return
	}
	respondError(w, log, http.StatusBadRequest, err.Error())
}

// readJSONBody reads and validates the raw inbound JSON body that will be
// forwarded to a vendor. Bodies over the cap are rejected, never
// truncated: what reaches the vendor must be exactly what the caller
// sent. The body is not decoded into a struct: its field shapes belong to
// the vendor.
func readJSONBody(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, mbe
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("request body is required")
	}
	if !json.Valid(body) {
		return nil, errors.New("request body is not valid JSON")
	}
	return body, nil
}

// decodeRequest decodes an inbound JSON body into a gateway-owned request
// struct, subject to the same size cap as readJSONBody.
func decodeRequest(r *http.Request, target any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)).
		Decode(target)
}
