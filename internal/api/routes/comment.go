package routes

import (
	"Glimpse/internal/api/handlers/comment"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(
	r chi.Router,
	commentService comments.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	addHandler := comment.NewAddCommentHandler(commentService)
	deleteHandler := comment.NewDeleteCommentHandler(commentService)
	listHandler := comment.NewListCommentsHandler(commentService)

	// POST /add-comment
	r.With(authMiddleware.RequireAuth).Post("/add-comment", addHandler.HandleAddComment)

	// DELETE /delete-comment/{id}
	r.With(authMiddleware.RequireAuth).Delete("/delete-comment/{id}", deleteHandler.HandleDeleteComment)

	// GET /get-comments/{postId}
	r.With(authMiddleware.RequireAuth).Get("/get-comments/{postId}", listHandler.HandleListComments)
}
