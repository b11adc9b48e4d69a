package follow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/graph"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// mockGraphService implements graph.Service for testing
type mockGraphService struct {
	toggleFunc func(ctx context.Context, actorID, targetID uuid.UUID) (*graph.ToggleFollowResponse, error)
}

func (m *mockGraphService) ToggleFollow(ctx context.Context, actorID, targetID uuid.UUID) (*graph.ToggleFollowResponse, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, actorID, targetID)
	}
	return &graph.ToggleFollowResponse{Following: true}, nil
}

func newFollowRequest(actorID, targetID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/follow/"+targetID.String(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", targetID.String())
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.SetTestUserID(ctx, actorID)

	return req.WithContext(ctx)
}

func TestToggleFollowHandler_Success(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	handler := NewToggleFollowHandler(&mockGraphService{})

	w := httptest.NewRecorder()
	handler.HandleToggleFollow(w, newFollowRequest(actorID, targetID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp graph.ToggleFollowResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Following {
		t.Errorf("expected following=true, got %+v", resp)
	}
}

func TestToggleFollowHandler_SelfFollow(t *testing.T) {
	actorID := uuid.New()

	mockService := &mockGraphService{
		toggleFunc: func(ctx context.Context, a, b uuid.UUID) (*graph.ToggleFollowResponse, error) {
			return nil, graph.ErrSelfFollow
		},
	}
	handler := NewToggleFollowHandler(mockService)

	w := httptest.NewRecorder()
	handler.HandleToggleFollow(w, newFollowRequest(actorID, actorID))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleFollowHandler_TargetNotFound(t *testing.T) {
	mockService := &mockGraphService{
		toggleFunc: func(ctx context.Context, a, b uuid.UUID) (*graph.ToggleFollowResponse, error) {
			return nil, graph.ErrUserNotFound
		},
	}
	handler := NewToggleFollowHandler(mockService)

	w := httptest.NewRecorder()
	handler.HandleToggleFollow(w, newFollowRequest(uuid.New(), uuid.New()))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleFollowHandler_Unauthenticated(t *testing.T) {
	handler := NewToggleFollowHandler(&mockGraphService{})

	targetID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/follow/"+targetID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", targetID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	handler.HandleToggleFollow(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
