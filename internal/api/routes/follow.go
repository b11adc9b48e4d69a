package routes

import (
	"Glimpse/internal/api/handlers/follow"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/graph"

	"github.com/go-chi/chi/v5"
)

// RegisterFollowRoutes registers follow-graph endpoints
func RegisterFollowRoutes(
	r chi.Router,
	graphService graph.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	toggleFollowHandler := follow.NewToggleFollowHandler(graphService)

	// POST /follow/{userId}
	r.With(authMiddleware.RequireAuth).Post("/follow/{userId}", toggleFollowHandler.HandleToggleFollow)
}
