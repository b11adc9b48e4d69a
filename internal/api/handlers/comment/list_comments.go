package comment

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/comments"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListCommentsHandler handles comment listings
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleListComments returns a post's comments newest first
// GET /get-comments/{postId}
func (h *ListCommentsHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return
	}

	views, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
