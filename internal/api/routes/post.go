package routes

import (
	"Glimpse/internal/api/handlers/post"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post lifecycle endpoints
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	createHandler := post.NewCreatePostHandler(postService)
	deleteHandler := post.NewDeletePostHandler(postService)
	getHandler := post.NewGetPostHandler(postService)

	// POST /create-post
	r.With(authMiddleware.RequireAuth).Post("/create-post", createHandler.HandleCreatePost)

	// DELETE /delete-post/{id}
	r.With(authMiddleware.RequireAuth).Delete("/delete-post/{id}", deleteHandler.HandleDeletePost)

	// GET /get-post/{id}
	r.With(authMiddleware.RequireAuth).Get("/get-post/{id}", getHandler.HandleGetPost)
}
