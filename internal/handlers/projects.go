package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	glog "github.com/goliatone/go-logger/glog"

	"jmorrow.dev/internal/services"
)

// ProjectHandler handles the catalog API endpoints
type ProjectHandler struct {
	projects *services.ProjectService
	log      glog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, log glog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: ps, log: log}
}

// ListProjects handles GET /api/projects. Records come back in catalog order.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.log, w, http.StatusOK, h.projects.All())
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projects.BySlug(slug)
	if err != nil {
		respondError(h.log, w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(h.log, w, http.StatusOK, project)
}
