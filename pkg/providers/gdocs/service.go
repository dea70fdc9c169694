// Package gdocs wraps the Google Docs API (plus the Drive call needed to
// delete a document) behind a pass-through service authenticated with a
// service account.
package gdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/saasbridge/saasbridge/pkg/providers"
)

// Config holds the service configuration.
type Config struct {
	// CredentialsFile is the path to the service-account JSON key file.
	CredentialsFile string

	// Subject is an optional user to impersonate via domain-wide
	// delegation.
	Subject string
}

// Service wraps the Google Docs and Drive services.
type Service struct {
	Docs  *docs.Service
	Drive *drive.Service
}

// NewService creates a Docs service authenticated with the configured
// service account. Extra client options are applied after authentication,
// which lets tests point the service at a fake endpoint with
// option.WithoutAuthentication and option.WithEndpoint.
func NewService(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Service, error) {
	var clientOpts []option.ClientOption

	if cfg.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("error reading service-account credentials: %w", err)
		}

		jwtCfg, err := google.JWTConfigFromJSON(
			creds,
			docs.DocumentsScope,
			drive.DriveScope,
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing service-account credentials: %w", err)
		}
		jwtCfg.Subject = cfg.Subject

		clientOpts = append(clientOpts, option.WithHTTPClient(jwtCfg.Client(ctx)))
	}
	clientOpts = append(clientOpts, opts...)

	docsSvc, err := docs.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating Google Docs service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating Google Drive service: %w", err)
	}

	return &Service{
		Docs:  docsSvc,
		Drive: driveSvc,
	}, nil
}

// GetDocument returns the full document.
func (s *Service) GetDocument(ctx context.Context, docID string) (*docs.Document, error) {
	doc, err := s.Docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, wrapGoogleError("get document", err)
	}
	return doc, nil
}

// CreateDocument creates an empty document with the given title.
func (s *Service) CreateDocument(ctx context.Context, title string) (*docs.Document, error) {
	doc, err := s.Docs.Documents.Create(&docs.Document{Title: title}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapGoogleError("create document", err)
	}
	return doc, nil
}

// BatchUpdate applies a raw batchUpdate request body to a document. The
// caller's request batch is decoded straight into the SDK type without any
// modeling of its shape.
func (s *Service) BatchUpdate(ctx context.Context, docID string, payload json.RawMessage) (*docs.BatchUpdateDocumentResponse, error) {
	req := &docs.BatchUpdateDocumentRequest{}
	if err := json.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("error decoding batchUpdate payload: %w", err)
	}

	resp, err := s.Docs.Documents.BatchUpdate(docID, req).Context(ctx).Do()
	if err != nil {
		return nil, wrapGoogleError("batch update document", err)
	}
	return resp, nil
}

// DeleteDocument deletes the underlying Drive file.
func (s *Service) DeleteDocument(ctx context.Context, docID string) error {
	if err := s.Drive.Files.Delete(docID).Context(ctx).Do(); err != nil {
		return wrapGoogleError("delete document", err)
	}
	return nil
}

// wrapGoogleError converts a googleapi error into the shared upstream
// error type so the API layer maps it like any other vendor failure.
func wrapGoogleError(op string, err error) error {
	if gerr, ok := err.(*googleapi.Error); ok {
		return fmt.Errorf("%s: %w", op, &providers.UpstreamError{
			StatusCode: gerr.Code,
			Body:       gerr.Message,
		})
	}
	return fmt.Errorf("%s: %w", op, err)
}
