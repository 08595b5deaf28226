package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	glog "github.com/goliatone/go-logger/glog"

	"jmorrow.dev/internal/render"
	"jmorrow.dev/internal/services"
)

// featuredCount limits how many projects appear on the landing page.
const featuredCount = 3

// PageHandler renders the HTML pages.
type PageHandler struct {
	renderer *render.Renderer
	projects *services.ProjectService
	posts    *services.PostService
	log      glog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(r *render.Renderer, ps *services.ProjectService, posts *services.PostService, log glog.Logger) *PageHandler {
	return &PageHandler{renderer: r, projects: ps, posts: posts, log: log}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	projects := h.projects.All()
	if len(projects) > featuredCount {
		projects = projects[:featuredCount]
	}

	h.renderHTML(w, func(w io.Writer) error {
		return h.renderer.Index(w, render.IndexData{
			Projects: projects,
			Posts:    h.posts.All(),
		})
	})
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, func(w io.Writer) error {
		return h.renderer.Projects(w, render.ProjectsData{Projects: h.projects.All()})
	})
}

// Blog handles GET /blog
func (h *PageHandler) Blog(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, func(w io.Writer) error {
		return h.renderer.Blog(w, render.BlogData{Posts: h.posts.All()})
	})
}

// Post handles GET /blog/{slug}
func (h *PageHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.posts.BySlug(slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.renderHTML(w, func(w io.Writer) error {
		return h.renderer.Post(w, render.PostData{Post: post})
	})
}

// renderHTML buffers the page so a template failure can still return a clean
// 500 instead of a truncated body.
func (h *PageHandler) renderHTML(w http.ResponseWriter, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		if h.log != nil {
			h.log.Error("render page", "error", err)
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
