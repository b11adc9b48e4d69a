package post

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetPostHandler handles single post reads
type GetPostHandler struct {
	service posts.Service
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(service posts.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGetPost returns a post hydrated with its author summary and the
// viewer's like/save state
// GET /get-post/{id}
func (h *GetPostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	if viewerID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return
	}

	view, err := h.service.GetPost(r.Context(), viewerID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
