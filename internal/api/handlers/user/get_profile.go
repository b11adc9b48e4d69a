package user

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetProfileHandler serves profile views
type GetProfileHandler struct {
	service users.Service
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(service users.Service) *GetProfileHandler {
	return &GetProfileHandler{service: service}
}

// HandleMyProfile returns the caller's own profile with follower counts and
// the post grid
// GET /myprofile
func (h *GetProfileHandler) HandleMyProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// HandleGetUser returns another user's profile as seen by the caller,
// including whether the caller follows them
// GET /get-user/{id}
func (h *GetProfileHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	if viewerID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), viewerID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}
