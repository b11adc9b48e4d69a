package routes

import (
	"Glimpse/internal/api/handlers/user"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers profile endpoints
func RegisterUserRoutes(
	r chi.Router,
	userService users.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	profileHandler := user.NewGetProfileHandler(userService)
	editHandler := user.NewEditProfileHandler(userService)
	searchHandler := user.NewSearchUsersHandler(userService)

	// GET /myprofile
	r.With(authMiddleware.RequireAuth).Get("/myprofile", profileHandler.HandleMyProfile)

	// GET /get-user/{id}
	r.With(authMiddleware.RequireAuth).Get("/get-user/{id}", profileHandler.HandleGetUser)

	// PUT /edit-profile
	r.With(authMiddleware.RequireAuth).Put("/edit-profile", editHandler.HandleEditProfile)

	// GET /search?username=
	r.With(authMiddleware.RequireAuth).Get("/search", searchHandler.HandleSearchUsers)
}
