package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Glimpse/internal/api/middleware"

	"github.com/go-chi/chi/v5"
)

// Every read endpoint requires a verified identity just like the writes;
// only /health is open. The middleware rejects before any handler runs, so
// nil services are fine here.
func TestReadRoutes_RejectAnonymous(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	r := chi.NewRouter()
	RegisterFeedRoutes(r, nil, authMiddleware)
	RegisterCommentRoutes(r, nil, authMiddleware)
	RegisterPostRoutes(r, nil, authMiddleware)

	paths := []string{
		"/explore",
		"/get-feed-posts",
		"/get-comments/11111111-1111-1111-1111-111111111111",
		"/get-post/11111111-1111-1111-1111-111111111111",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for %s without a token, got %d", path, rr.Code)
		}
	}
}
