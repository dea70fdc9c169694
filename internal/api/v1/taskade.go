package api

import (
	"net/http"

	"github.com/saasbridge/saasbridge/internal/server"
)

// TaskadeWorkspacesHandler handles /api/v1/taskade/workspaces.
func TaskadeWorkspacesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Taskade == nil {
			respondVendorDisabled(w, srv.Logger, "taskade")
			return
		}

		if r.Method != http.MethodGet {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		result, err := srv.Taskade.ListWorkspaces(r.Context())
		if err != nil {
			respondUpstreamError(w, srv.Logger, "taskade", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}

// TaskadeWorkspaceProjectsHandler handles
// /api/v1/taskade/workspaces/{workspace}/projects.
func TaskadeWorkspaceProjectsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Taskade == nil {
			respondVendorDisabled(w, srv.Logger, "taskade")
			return
		}

		if r.Method != http.MethodGet {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		result, err := srv.Taskade.ListProjects(
			r.Context(), r.PathValue("workspace"))
		if err != nil {
			respondUpstreamError(w, srv.Logger, "taskade", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}

// TaskadeProjectTasksHandler handles
// /api/v1/taskade/projects/{project}/tasks.
func TaskadeProjectTasksHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Taskade == nil {
			respondVendorDisabled(w, srv.Logger, "taskade")
			return
		}

		project := r.PathValue("project")

		switch r.Method {
		case http.MethodGet:
			result, err := srv.Taskade.ListTasks(r.Context(), project)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "taskade", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		case http.MethodPost:
			payload, err := readJSONBody(r)
			if err != nil {
				srv.Logger.Error("error reading task payload", "error", err)
				respondBodyError(w, srv.Logger, err)
				return
			}

			result, err := srv.Taskade.CreateTask(r.Context(), project, payload)
			if err != nil {
				respondUpstreamError(w, srv.Logger, "taskade", err)
				return
			}
			respondJSON(w, srv.Logger, result)

		default:
			respondMethodNotAllowed(w, srv.Logger)
		}
	})
}

// TaskadeCompleteTaskHandler handles
// /api/v1/taskade/projects/{project}/tasks/{task}/complete.
func TaskadeCompleteTaskHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if srv.Taskade == nil {
			respondVendorDisabled(w, srv.Logger, "taskade")
			return
		}

		if r.Method != http.MethodPost {
			respondMethodNotAllowed(w, srv.Logger)
			return
		}

		result, err := srv.Taskade.CompleteTask(
			r.Context(), r.PathValue("project"), r.PathValue("task"))
		if err != nil {
			respondUpstreamError(w, srv.Logger, "taskade", err)
			return
		}
		respondJSON(w, srv.Logger, result)
	})
}
