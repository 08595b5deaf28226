package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	glog "github.com/goliatone/go-logger/glog"

	"jmorrow.dev/internal/middleware"
	"jmorrow.dev/internal/render"
	"jmorrow.dev/internal/services"
)

// Site bundles the loaded content and the renderer behind the router.
type Site struct {
	Projects  *services.ProjectService
	Posts     *services.PostService
	Renderer  *render.Renderer
	StaticDir string
	Log       glog.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(site *Site) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(site.Log))
	r.Use(middleware.Logger(site.Log))

	projectHandler := NewProjectHandler(site.Projects, site.Log)
	postHandler := NewPostHandler(site.Posts, site.Log)
	pageHandler := NewPageHandler(site.Renderer, site.Projects, site.Posts, site.Log)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/posts", postHandler.ListPosts)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(site.Log, w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// HTML pages
	r.Get("/", pageHandler.Index)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/blog", pageHandler.Blog)
	r.Get("/blog/{slug}", pageHandler.Post)

	// Static files
	fileServer := http.FileServer(http.Dir(site.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(log glog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && log != nil {
		log.Error("encode response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(log glog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(log, w, status, map[string]string{"error": message})
}
