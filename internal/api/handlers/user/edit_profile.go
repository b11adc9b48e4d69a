package user

import (
	"encoding/json"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
	"Glimpse/internal/validation"

	"github.com/google/uuid"
)

// EditProfileHandler handles profile edits
type EditProfileHandler struct {
	service users.Service
}

// NewEditProfileHandler creates a new edit profile handler
func NewEditProfileHandler(service users.Service) *EditProfileHandler {
	return &EditProfileHandler{service: service}
}

// HandleEditProfile applies a partial profile update for the caller. Omitted
// bio and avatar fields are left untouched.
// PUT /edit-profile
//
// Request body: { "name": "...", "bio": "...", "avatar": "..." }
func (h *EditProfileHandler) HandleEditProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		handlers.WriteValidationError(w, verr)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
