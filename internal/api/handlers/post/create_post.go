package post

import (
	"encoding/json"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
	"Glimpse/internal/validation"

	"github.com/google/uuid"
)

// CreatePostHandler handles post creation
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreatePost publishes a new post for the authenticated user
// POST /create-post
//
// Request body: { "caption": "...", "images": [...], "hashtags": [...] }
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r)
	if authorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		handlers.WriteValidationError(w, verr)
		return
	}

	created, err := h.service.CreatePost(r.Context(), authorID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
