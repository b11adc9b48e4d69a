package post

import (
	"log"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/posts"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrNotPostAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Only the post author can delete it")
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
