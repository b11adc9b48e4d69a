package feed

import (
	"log"
	"net/http"
	"strconv"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/feed"

	"github.com/google/uuid"
)

// FeedHandler serves the home feed and the explore grid
type FeedHandler struct {
	service feed.Service
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service feed.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// HandleGetFeed returns a random sample of posts from followed authors,
// annotated with the caller's like/save state
// GET /get-feed-posts?limit=
func (h *FeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	if viewerID == uuid.Nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	limit := feed.DefaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	posts, err := h.service.GetFeed(r.Context(), viewerID, limit)
	if err != nil {
		log.Printf("Feed error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, posts)
}

// HandleExplore returns a graph-independent random sample for discovery
// GET /explore
func (h *FeedHandler) HandleExplore(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetExplore(r.Context(), feed.DefaultExploreSize)
	if err != nil {
		log.Printf("Explore error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, posts)
}
