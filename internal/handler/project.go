package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/taskmanager/internal/apperror"
	"github.com/sakif/taskmanager/internal/model"
	"github.com/sakif/taskmanager/internal/service"
)

// ProjectHandler exposes CRUD over the projects resource.
//
// NO AUTHORIZATION, BY CONTRACT:
// Projects are not scoped to a requesting principal. Any caller can list,
// update, or delete any project by id; no header or token is required on
// any of these routes.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// projectRequest is the body shared by create and update.
type projectRequest struct {
	Name        string `json:"projectName"`
	Description string `json:"projectDescription"`
}

// createProjectResponse carries the generated id: {"projectId": 1}.
type createProjectResponse struct {
	ProjectID int64 `json:"projectId"`
}

// listProjectsResponse wraps the rows: {"projects": [...]}.
type listProjectsResponse struct {
	Projects []model.Project `json:"projects"`
}

// parseID converts a numeric path parameter. Chi populates r.PathValue for
// named route segments like /projects/{projectID}.
func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// HandleCreate creates a project owned by the user id in the path.
//
// HTTP: POST /projects/{userID}
// Body: {"projectName": "...", "projectDescription": "..."}
//
// A non-numeric owner id or an empty body field fails with 400 "Missing
// required fields". Any numeric owner id is accepted as-is, 0 included —
// nothing checks it against the users table.
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "userID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid project JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	projectID, err := h.projects.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createProjectResponse{ProjectID: projectID})
}

// HandleList returns every project.
//
// HTTP: GET /projects
// Response: {"projects": [{"projectId": 1, "projectName": "...", ...}, ...]}
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listProjectsResponse{Projects: projects})
}

// HandleUpdate replaces a project's name and description.
//
// HTTP: PUT /projects/{projectID}
//
// 400 when either body field is missing, 404 when the id matches nothing,
// 200 {"message": "Project updated successfully"} otherwise. The body check
// outranks the id: a request with missing fields gets the 400 even when the
// id segment is not numeric.
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid project JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	// A non-numeric id falls through as 0, which matches no row. The
	// service validates the body first, so the 400 still wins over the 404.
	projectID, err := parseID(r, "projectID")
	if err != nil {
		projectID = 0
	}

	if err := h.projects.Update(r.Context(), projectID, req.Name, req.Description); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project updated successfully"})
}

// HandleDelete removes a project.
//
// HTTP: DELETE /projects/{projectID}
//
// 404 when the id matches nothing, otherwise
// 200 {"message": "Project deleted successfully"}. No cascading deletes.
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectID")
	if err != nil {
		writeError(w, apperror.NotFound("Project not found"))
		return
	}

	if err := h.projects.Delete(r.Context(), projectID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
