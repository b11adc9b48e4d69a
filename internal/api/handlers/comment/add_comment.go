package comment

import (
	"encoding/json"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
	"Glimpse/internal/validation"

	"github.com/google/uuid"
)

// AddCommentHandler handles comment creation
type AddCommentHandler struct {
	service comments.Service
}

// NewAddCommentHandler creates a new add comment handler
func NewAddCommentHandler(service comments.Service) *AddCommentHandler {
	return &AddCommentHandler{service: service}
}

// HandleAddComment attaches a comment to a post
// POST /add-comment
//
// Request body: { "postId": "...", "text": "..." }
func (h *AddCommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req comments.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		handlers.WriteValidationError(w, verr)
		return
	}

	comment, err := h.service.AddComment(r.Context(), actorID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
