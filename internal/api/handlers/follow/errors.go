package follow

import (
	"log"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/graph"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case graph.ErrSelfFollow:
		handlers.WriteError(w, http.StatusBadRequest, "SelfFollow", "You cannot follow yourself")
	case graph.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	default:
		log.Printf("Follow handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
