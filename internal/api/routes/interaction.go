package routes

import (
	"Glimpse/internal/api/handlers/interaction"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/interactions"

	"github.com/go-chi/chi/v5"
)

// RegisterInteractionRoutes registers like/save endpoints
func RegisterInteractionRoutes(
	r chi.Router,
	interactionService interactions.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	toggleLikeHandler := interaction.NewToggleLikeHandler(interactionService)
	toggleSaveHandler := interaction.NewToggleSaveHandler(interactionService)
	listHandler := interaction.NewListHandler(interactionService)

	// POST /like-unlike/{postId}
	r.With(authMiddleware.RequireAuth).Post("/like-unlike/{postId}", toggleLikeHandler.HandleToggleLike)

	// POST /save-unsave/{postId}
	r.With(authMiddleware.RequireAuth).Post("/save-unsave/{postId}", toggleSaveHandler.HandleToggleSave)

	// GET /liked-posts
	r.With(authMiddleware.RequireAuth).Get("/liked-posts", listHandler.HandleLikedPosts)

	// GET /saved-posts
	r.With(authMiddleware.RequireAuth).Get("/saved-posts", listHandler.HandleSavedPosts)
}
