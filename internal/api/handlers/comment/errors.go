package comment

import (
	"log"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/comments"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case comments.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case comments.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case comments.ErrNotCommentAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Only the comment author can delete it")
	case comments.ErrContentEmpty:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment text cannot be empty")
	case comments.ErrContentTooLong:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment text is too long")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
