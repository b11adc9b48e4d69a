package interaction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/interactions"
	"Glimpse/internal/core/posts"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// mockInteractionService implements interactions.Service for testing
type mockInteractionService struct {
	toggleLikeFunc func(ctx context.Context, actorID, postID uuid.UUID) (*interactions.ToggleLikeResponse, error)
	toggleSaveFunc func(ctx context.Context, actorID, postID uuid.UUID) (*interactions.ToggleSaveResponse, error)
}

func (m *mockInteractionService) ToggleLike(ctx context.Context, actorID, postID uuid.UUID) (*interactions.ToggleLikeResponse, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, actorID, postID)
	}
	return &interactions.ToggleLikeResponse{Liked: true, LikeCount: 1}, nil
}

func (m *mockInteractionService) ToggleSave(ctx context.Context, actorID, postID uuid.UUID) (*interactions.ToggleSaveResponse, error) {
	if m.toggleSaveFunc != nil {
		return m.toggleSaveFunc(ctx, actorID, postID)
	}
	return &interactions.ToggleSaveResponse{Saved: true}, nil
}

func (m *mockInteractionService) ListLikedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error) {
	return []*posts.PostPreview{}, nil
}

func (m *mockInteractionService) ListSavedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error) {
	return []*posts.PostPreview{}, nil
}

// newToggleRequest builds an authenticated request with the postId URL param
func newToggleRequest(t *testing.T, path string, actorID, postID uuid.UUID) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postId", postID.String())
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.SetTestUserID(ctx, actorID)

	return req.WithContext(ctx)
}

func TestToggleLikeHandler_Success(t *testing.T) {
	actorID := uuid.New()
	postID := uuid.New()

	mockService := &mockInteractionService{
		toggleLikeFunc: func(ctx context.Context, gotActor, gotPost uuid.UUID) (*interactions.ToggleLikeResponse, error) {
			if gotActor != actorID || gotPost != postID {
				t.Errorf("unexpected args: actor=%s post=%s", gotActor, gotPost)
			}
			return &interactions.ToggleLikeResponse{Liked: true, LikeCount: 3}, nil
		},
	}
	handler := NewToggleLikeHandler(mockService)

	req := newToggleRequest(t, "/like-unlike/"+postID.String(), actorID, postID)
	w := httptest.NewRecorder()
	handler.HandleToggleLike(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp interactions.ToggleLikeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Liked || resp.LikeCount != 3 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestToggleLikeHandler_Unauthenticated(t *testing.T) {
	handler := NewToggleLikeHandler(&mockInteractionService{})

	postID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/like-unlike/"+postID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postId", postID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	handler.HandleToggleLike(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestToggleLikeHandler_InvalidPostID(t *testing.T) {
	handler := NewToggleLikeHandler(&mockInteractionService{})

	req := httptest.NewRequest(http.MethodPost, "/like-unlike/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postId", "not-a-uuid")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.SetTestUserID(ctx, uuid.New())
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	handler.HandleToggleLike(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestToggleLikeHandler_PostNotFound(t *testing.T) {
	mockService := &mockInteractionService{
		toggleLikeFunc: func(ctx context.Context, actorID, postID uuid.UUID) (*interactions.ToggleLikeResponse, error) {
			return nil, interactions.ErrPostNotFound
		},
	}
	handler := NewToggleLikeHandler(mockService)

	postID := uuid.New()
	req := newToggleRequest(t, "/like-unlike/"+postID.String(), uuid.New(), postID)
	w := httptest.NewRecorder()
	handler.HandleToggleLike(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleSaveHandler_Success(t *testing.T) {
	actorID := uuid.New()
	postID := uuid.New()

	handler := NewToggleSaveHandler(&mockInteractionService{})

	req := newToggleRequest(t, "/save-unsave/"+postID.String(), actorID, postID)
	w := httptest.NewRecorder()
	handler.HandleToggleSave(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp interactions.ToggleSaveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Saved {
		t.Errorf("expected saved=true, got %+v", resp)
	}
}
