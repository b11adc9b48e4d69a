package routes

import (
	"Glimpse/internal/api/handlers/notification"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/notifications"

	"github.com/go-chi/chi/v5"
)

// RegisterNotificationRoutes registers notification feed endpoints
func RegisterNotificationRoutes(
	r chi.Router,
	notificationService notifications.Service,
	authMiddleware *middleware.AuthMiddleware,
) {
	handler := notification.NewNotificationHandler(notificationService)

	// GET /notifications
	r.With(authMiddleware.RequireAuth).Get("/notifications", handler.HandleList)

	// POST /notifications/read
	r.With(authMiddleware.RequireAuth).Post("/notifications/read", handler.HandleMarkAllRead)
}
