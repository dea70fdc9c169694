package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/saasbridge/saasbridge/internal/server"
)

// GoogleDocsCreateRequest contains the fields allowed when creating a
// document. Everything else about a document is edited through
// batchUpdate, whose shape is owned by Google.
type GoogleDocsCreateRequest struct {
	Title string `json:"title"`
}

// Validate checks the request fields.
func (req GoogleDocsCreateRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 500)),
	)
}

// GoogleDocsDocumentsHandler handles /api/v1/gdocs/documents.
func GoogleDocsDocumentsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GoogleDocs == nil {
			respondVendorDisabled(w, srv.Logger, "google_docs")
			return
		}

		if r.Method != http.MethodPost {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		var req GoogleDocsCreateRequest
		if err := decodeRequest(r, &req); err != nil {
			srv.Logger.Error("error decoding create document request", "error", err)
			respondBodyError(w, srv.Logger, err)
			return
		}
		if err := req.Validate(); err != nil {
			respondError(w, srv.Logger, http.StatusBadRequest, err.Error())
			return
		}

		doc, err := srv.GoogleDocs.CreateDocument(r.Context(), req.Title)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "google_docs", err)
			return
		}
		respondJSON(w, srv.Logger, doc)
	})
}

// GoogleDocsDocumentHandler handles /api/v1/gdocs/documents/{doc}.
func GoogleDocsDocumentHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GoogleDocs == nil {
			respondVendorDisabled(w, srv.Logger, "google_docs")
			return
		}

		docID := r.PathValue("doc")

		switch r.Method {
		case http.MethodGet:
			doc, err := srv.GoogleDocs.GetDocument(r.Context(), docID)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "google_docs", err)
				return
			}
			respondJSON(w, srv.Logger, doc)

		case http.MethodDelete:
			if err := srv.GoogleDocs.DeleteDocument(r.Context(), docID); err != nil {
				respondUpstreamError(w, srv.Logger, "google_docs", err)
				return
			}
			respondJSON(w, srv.Logger, nil)

		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// GoogleDocsBatchUpdateHandler handles
// /api/v1/gdocs/documents/{doc}/batchUpdate. The request batch is
// forwarded to the Docs API without modeling its format.
func GoogleDocsBatchUpdateHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GoogleDocs == nil {
			respondVendorDisabled(w, srv.Logger, "google_docs")
			return
		}

		if r.Method != http.MethodPost {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		payload, err := readJSONBody(r)
		if err != nil {
			srv.Logger.Error("error reading batchUpdate payload", "error", err)
			respondBodyError(w, srv.Logger, err)
			return
		}

		resp, err := srv.GoogleDocs.BatchUpdate(
			r.Context(), r.PathValue("doc"), payload)
		if err != nil {
			respondUpstreamError(w, srv.Logger, "google_docs", err)
			return
		}
		respondJSON(w, srv.Logger, resp)
	})
}
