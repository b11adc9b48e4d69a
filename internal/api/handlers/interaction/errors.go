package interaction

import (
	"log"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/interactions"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case interactions.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	default:
		log.Printf("Interaction handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
