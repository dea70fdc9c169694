package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/saasbridge/saasbridge/internal/config"
	"github.com/saasbridge/saasbridge/pkg/providers/cloudflare"
	"github.com/saasbridge/saasbridge/pkg/providers/gdocs"
	"github.com/saasbridge/saasbridge/pkg/providers/gemini"
	"github.com/saasbridge/saasbridge/pkg/providers/gitlab"
	"github.com/saasbridge/saasbridge/pkg/providers/huggingface"
	"github.com/saasbridge/saasbridge/pkg/providers/taskade"
)

// Server carries the read-only state shared by all request handlers: the
// configuration, the logger, and one client per enabled vendor. A nil
// client means the vendor had no credential at startup and its routes
// answer 503.
type Server struct {
	// Config is the gateway configuration.
	Config *config.Config

	// Logger is the logger for the server.
	Logger hclog.Logger

	// Cloudflare is the Cloudflare API client.
	Cloudflare *cloudflare.Client

	// HuggingFace is the Hugging Face inference/Hub client.
	HuggingFace *huggingface.Client

	// GoogleDocs is the Google Docs service.
	GoogleDocs *gdocs.Service

	// GitLab is the GitLab API client.
	GitLab *gitlab.Client

	// Gemini is the Gemini API client.
	Gemini *gemini.Client

	// Taskade is the Taskade API client.
	Taskade *taskade.Client
}
