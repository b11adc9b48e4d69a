package user

import (
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"

	"github.com/google/uuid"
)

// SearchUsersHandler handles user search
type SearchUsersHandler struct {
	service users.Service
}

// NewSearchUsersHandler creates a new search users handler
func NewSearchUsersHandler(service users.Service) *SearchUsersHandler {
	return &SearchUsersHandler{service: service}
}

// HandleSearchUsers finds users by username or display name. The caller is
// excluded from their own results.
// GET /search?username=
func (h *SearchUsersHandler) HandleSearchUsers(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	if viewerID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	query := r.URL.Query().Get("username")

	results, err := h.service.SearchUsers(r.Context(), viewerID, query)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, results)
}
