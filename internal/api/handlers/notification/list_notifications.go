package notification

import (
	"log"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/notifications"

	"github.com/google/uuid"
)

// NotificationHandler serves the caller's notification feed
type NotificationHandler struct {
	service notifications.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service notifications.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// HandleList returns the caller's notifications newest first
// GET /notifications
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	recipientID := middleware.GetUserID(r)
	if recipientID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	views, err := h.service.List(r.Context(), recipientID)
	if err != nil {
		log.Printf("Notification list error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}

// HandleMarkAllRead marks every unread notification as read
// POST /notifications/read
func (h *NotificationHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	recipientID := middleware.GetUserID(r)
	if recipientID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.MarkAllRead(r.Context(), recipientID); err != nil {
		log.Printf("Notification mark-read error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"read": true})
}
