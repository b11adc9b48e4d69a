package routes

import (
	feedhandler "Glimpse/internal/api/handlers/feed"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/feed"

	"github.com/go-chi/chi/v5"
)

// RegisterFeedRoutes registers home feed and explore endpoints
func RegisterFeedRoutes(
	r chi.Router,
	feedService feed.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	handler := feedhandler.NewFeedHandler(feedService)

	// GET /get-feed-posts
	r.With(authMiddleware.RequireAuth).Get("/get-feed-posts", handler.HandleGetFeed)

	// GET /explore
	r.With(authMiddleware.RequireAuth).Get("/explore", handler.HandleExplore)
}
