package follow

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/graph"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ToggleFollowHandler handles follow toggling
type ToggleFollowHandler struct {
	service graph.Service
}

// NewToggleFollowHandler creates a new toggle follow handler
func NewToggleFollowHandler(service graph.Service) *ToggleFollowHandler {
	return &ToggleFollowHandler{service: service}
}

// HandleToggleFollow follows or unfollows a user on behalf of the caller
// POST /follow/{userId}
//
// Response: { "following": bool }
func (h *ToggleFollowHandler) HandleToggleFollow(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	response, err := h.service.ToggleFollow(r.Context(), actorID, targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
