package interaction

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/interactions"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ToggleLikeHandler handles like toggling
type ToggleLikeHandler struct {
	service interactions.Service
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(service interactions.Service) *ToggleLikeHandler {
	return &ToggleLikeHandler{service: service}
}

// HandleToggleLike likes or unlikes a post for the authenticated user
// POST /like-unlike/{postId}
//
// Response: { "liked": bool, "likeCount": int }
func (h *ToggleLikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return
	}

	response, err := h.service.ToggleLike(r.Context(), actorID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
