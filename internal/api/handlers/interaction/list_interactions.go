package interaction

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/interactions"

	"github.com/google/uuid"
)

// ListHandler serves the caller's liked and saved post collections
type ListHandler struct {
	service interactions.Service
}

// NewListHandler creates a new interaction list handler
func NewListHandler(service interactions.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleLikedPosts returns previews of every post the caller has liked
// GET /liked-posts
func (h *ListHandler) HandleLikedPosts(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	previews, err := h.service.ListLikedPosts(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, previews)
}

// HandleSavedPosts returns previews of every post the caller has saved
// GET /saved-posts
func (h *ListHandler) HandleSavedPosts(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	previews, err := h.service.ListSavedPosts(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, previews)
}
