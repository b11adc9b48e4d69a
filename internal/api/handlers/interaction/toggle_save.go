package interaction

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/interactions"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ToggleSaveHandler handles save toggling
type ToggleSaveHandler struct {
	service interactions.Service
}

// NewToggleSaveHandler creates a new toggle save handler
func NewToggleSaveHandler(service interactions.Service) *ToggleSaveHandler {
	return &ToggleSaveHandler{service: service}
}

// HandleToggleSave saves or unsaves a post for the authenticated user
// POST /save-unsave/{postId}
//
// Response: { "saved": bool }
func (h *ToggleSaveHandler) HandleToggleSave(w http.ResponseWriter, r *http.Request) {
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

	response, err := h.service.ToggleSave(r.Context(), actorID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
