package api

import (
	"net/http"

	"github.com/saasbridge/saasbridge/internal/server"
)

// GitLabProjectsHandler handles /api/v1/gitlab/projects.
func GitLabProjectsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GitLab == nil {
			respondVendorDisabled(w, srv.Logger, "gitlab")
			return
		}

		switch r.Method {
		case http.MethodGet:
			result, err := srv.GitLab.ListProjects(r.Context(), r.URL.Query())
			if err != nil {
				respondUpstreamError(w, srv.Logger, "gitlab", err)
				return
			}
			respondJSON(w, srv.Logger, result)
		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// GitLabProjectHandler handles /api/v1/gitlab/projects/{project}.
func GitLabProjectHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GitLab == nil {
			respondVendorDisabled(w, srv.Logger, "gitlab")
			return
		}

		switch r.Method {
		case http.MethodGet:
			result, err := srv.GitLab.GetProject(r.Context(), r.PathValue("project"))
			if err != nil {
				respondUpstreamError(w, srv.Logger, "gitlab", err)
				return
			}
			respondJSON(w, srv.Logger, result)
		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// GitLabIssuesHandler handles /api/v1/gitlab/projects/{project}/issues.
func GitLabIssuesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GitLab == nil {
			respondVendorDisabled(w, srv.Logger, "gitlab")
			return
		}

		project := r.PathValue("project")

		switch r.Method {
		case http.MethodGet:
			result, err := srv.GitLab.ListIssues(
				r.Context(), project, r.URL.Query())
			if err != nil {
				respondUpstreamError(w, srv.Logger, "gitlab", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		case http.MethodPost:
			payload, err := readJSONBody(r)
			if err != nil {
				srv.Logger.Error("error reading issue payload", "error", err)
				respondBodyError(w, srv.Logger, err)
				return
			}

			result, err := srv.GitLab.CreateIssue(r.Context(), project, payload)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "gitlab", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// GitLabMergeRequestsHandler handles
// /api/v1/gitlab/projects/{project}/merge_requests.
func GitLabMergeRequestsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.GitLab == nil {
			respondVendorDisabled(w, srv.Logger, "gitlab")
			return
		}

		switch r.Method {
		case http.MethodGet:
			result, err := srv.GitLab.ListMergeRequests(
				r.Context(), r.PathValue("project"), r.URL.Query())
			if err != nil {
				respondUpstreamError(w, srv.Logger, "gitlab", err)
				return
			}
			respondJSON(w, srv.Logger, result)
		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}
