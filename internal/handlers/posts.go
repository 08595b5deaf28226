package handlers

import (
	"net/http"

	glog "github.com/goliatone/go-logger/glog"

	"jmorrow.dev/internal/services"
)

// PostHandler handles the blog metadata API
type PostHandler struct {
	posts *services.PostService
	log   glog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(ps *services.PostService, log glog.Logger) *PostHandler {
	return &PostHandler{posts: ps, log: log}
}

// ListPosts handles GET /api/posts. Bodies are excluded; the JSON carries
// metadata only.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.log, w, http.StatusOK, h.posts.All())
}
