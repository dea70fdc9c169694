package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/saasbridge/saasbridge/internal/api/v1"
	"github.com/saasbridge/saasbridge/internal/cmd/base"
	"github.com/saasbridge/saasbridge/internal/config"
	"github.com/saasbridge/saasbridge/internal/server"
	"github.com/saasbridge/saasbridge/pkg/providers/cloudflare"
	"github.com/saasbridge/saasbridge/pkg/providers/gdocs"
	"github.com/saasbridge/saasbridge/pkg/providers/gemini"
	"github.com/saasbridge/saasbridge/pkg/providers/gitlab"
	"github.com/saasbridge/saasbridge/pkg/providers/huggingface"
	"github.com/saasbridge/saasbridge/pkg/providers/taskade"
)

type Command struct {
	*base.Command

	flagConfig string
	flagAddr   string
}

func (c *Command) Synopsis() string {
	return "Run the gateway server"
}

func (c *Command) Help() string {
	return `Usage: saasbridge server
       saasbridge server -config=config.hcl

  Run the saasbridge gateway. Vendor credentials come from the config file
  or from the environment (CLOUDFLARE_API_KEY, HUGGINGFACE_API_KEY,
  GITLAB_API_KEY, GEMINI_API_KEY, TASKADE_API_KEY,
  GOOGLE_APPLICATION_CREDENTIALS). Vendors without a credential are
  disabled and their routes answer 503.
` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("server", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to the HCL configuration file (optional)",
	)
	f.StringVar(
		&c.flagAddr, "addr", "",
		"Listen address, overrides the config file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	if c.flagAddr != "" {
		cfg.Server.Addr = c.flagAddr
	}
	if err := cfg.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid configuration: %v", err))
		return 1
	}

	log := c.Log.Named("server")

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := buildServer(ctx, cfg, log)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing server: %v", err))
		return 1
	}

	mux := http.NewServeMux()
	registerEndpoints(mux, srv)

	handler := requestLogging(log, api.AuthMiddleware(srv, mux))

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	log.Info("gateway listening", "addr", cfg.Server.Addr)
	c.UI.Info(fmt.Sprintf("saasbridge listening on http://%s", cfg.Server.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.UI.Error(fmt.Sprintf("server error: %v", err))
			return 1
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 15*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("error during shutdown", "error", err)
			return 1
		}
	}

	return 0
}

// buildServer constructs a client for every vendor with a credential.
func buildServer(ctx context.Context, cfg *config.Config, log hclog.Logger) (server.Server, error) {
	srv := server.Server{
		Config: cfg,
		Logger: log,
	}

	if cfg.Cloudflare.Enabled() {
		srv.Cloudflare = cloudflare.NewClient(cloudflare.Config{
			APIKey:  cfg.Cloudflare.APIKey,
			BaseURL: cfg.Cloudflare.BaseURL,
			Timeout: cfg.Cloudflare.UpstreamTimeout(),
		})
		log.Info("vendor enabled", "vendor", "cloudflare")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "cloudflare")
	}

	if cfg.HuggingFace.Enabled() {
		srv.HuggingFace = huggingface.NewClient(huggingface.Config{
			APIKey:           cfg.HuggingFace.APIKey,
			InferenceBaseURL: cfg.HuggingFace.BaseURL,
			HubBaseURL:       cfg.HuggingFace.HubBaseURL,
			Timeout:          cfg.HuggingFace.UpstreamTimeout(),
		})
		log.Info("vendor enabled", "vendor", "huggingface")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "huggingface")
	}

	if cfg.GoogleDocs.Enabled() {
		svc, err := gdocs.NewService(ctx, gdocs.Config{
			CredentialsFile: cfg.GoogleDocs.CredentialsFile,
			Subject:         cfg.GoogleDocs.Subject,
		})
		if err != nil {
			return srv, fmt.Errorf("error initializing Google Docs service: %w", err)
		}
		srv.GoogleDocs = svc
		log.Info("vendor enabled", "vendor", "google_docs")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "google_docs")
	}

	if cfg.GitLab.Enabled() {
		srv.GitLab = gitlab.NewClient(gitlab.Config{
			APIKey:  cfg.GitLab.APIKey,
			BaseURL: cfg.GitLab.BaseURL,
			Timeout: cfg.GitLab.UpstreamTimeout(),
		})
		log.Info("vendor enabled", "vendor", "gitlab")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "gitlab")
	}

	if cfg.Gemini.Enabled() {
		srv.Gemini = gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.UpstreamTimeout(),
		})
		log.Info("vendor enabled", "vendor", "gemini")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "gemini")
	}

	if cfg.Taskade.Enabled() {
		srv.Taskade = taskade.NewClient(taskade.Config{
			APIKey:  cfg.Taskade.APIKey,
			BaseURL: cfg.Taskade.BaseURL,
			Timeout: cfg.Taskade.UpstreamTimeout(),
		})
		log.Info("vendor enabled", "vendor", "taskade")
	} else {
		log.Warn("vendor disabled, no credential", "vendor", "taskade")
	}

	return srv, nil
}

// registerEndpoints wires every route onto the mux. Path wildcards are
// resolved by the handlers via Request.PathValue.
func registerEndpoints(mux *http.ServeMux, srv server.Server) {
	endpoints := []struct {
		pattern string
		handler http.Handler
	}{
		{"/health", api.HealthHandler(srv)},

		{"/api/v1/cloudflare/zones", api.CloudflareZonesHandler(srv)},
		{"/api/v1/cloudflare/zones/{zone}", api.CloudflareZoneHandler(srv)},
		{"/api/v1/cloudflare/zones/{zone}/dns", api.CloudflareDNSHandler(srv)},
		{"/api/v1/cloudflare/zones/{zone}/dns/{record}",
			api.CloudflareDNSRecordHandler(srv)},
		{"/api/v1/cloudflare/zones/{zone}/purge", api.CloudflarePurgeHandler(srv)},

		{"/api/v1/huggingface/models/{model...}", api.HuggingFaceModelHandler(srv)},
		{"/api/v1/huggingface/inference/{model...}",
			api.HuggingFaceInferenceHandler(srv)},

		{"/api/v1/gdocs/documents", api.GoogleDocsDocumentsHandler(srv)},
		{"/api/v1/gdocs/documents/{doc}", api.GoogleDocsDocumentHandler(srv)},
		{"/api/v1/gdocs/documents/{doc}/batchUpdate",
			api.GoogleDocsBatchUpdateHandler(srv)},

		{"/api/v1/gitlab/projects", api.GitLabProjectsHandler(srv)},
		{"/api/v1/gitlab/projects/{project}", api.GitLabProjectHandler(srv)},
		{"/api/v1/gitlab/projects/{project}/issues", api.GitLabIssuesHandler(srv)},
		{"/api/v1/gitlab/projects/{project}/merge_requests",
			api.GitLabMergeRequestsHandler(srv)},

		{"/api/v1/gemini/models", api.GeminiModelsHandler(srv)},
		{"/api/v1/gemini/models/{model}/generate", api.GeminiGenerateHandler(srv)},

		{"/api/v1/taskade/workspaces", api.TaskadeWorkspacesHandler(srv)},
		{"/api/v1/taskade/workspaces/{workspace}/projects",
			api.TaskadeWorkspaceProjectsHandler(srv)},
		{"/api/v1/taskade/projects/{project}/tasks",
			api.TaskadeProjectTasksHandler(srv)},
		{"/api/v1/taskade/projects/{project}/tasks/{task}/complete",
			api.TaskadeCompleteTaskHandler(srv)},
	}

	for _, e := range endpoints {
		mux.Handle(e.pattern, e.handler)
	}
}

// requestLogging logs each request after it completes.
func requestLogging(log hclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
