package comment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"

	"github.com/google/uuid"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	addFunc    func(ctx context.Context, actorID uuid.UUID, req comments.AddCommentRequest) (*comments.Comment, error)
	deleteFunc func(ctx context.Context, actorID, commentID uuid.UUID) error
}

func (m *mockCommentService) AddComment(ctx context.Context, actorID uuid.UUID, req comments.AddCommentRequest) (*comments.Comment, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, actorID, req)
	}
	return &comments.Comment{ID: uuid.New(), PostID: req.PostID, AuthorID: actorID, Text: req.Text}, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, actorID, commentID)
	}
	return nil
}

func (m *mockCommentService) ListComments(ctx context.Context, postID uuid.UUID) ([]*comments.CommentView, error) {
	return []*comments.CommentView{}, nil
}

func newAddCommentRequest(t *testing.T, actorID uuid.UUID, body interface{}) *http.Request {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/add-comment", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	return req.WithContext(middleware.SetTestUserID(req.Context(), actorID))
}

func TestAddCommentHandler_Success(t *testing.T) {
	actorID := uuid.New()
	postID := uuid.New()

	handler := NewAddCommentHandler(&mockCommentService{})

	req := newAddCommentRequest(t, actorID, comments.AddCommentRequest{
		PostID: postID,
		Text:   "great light",
	})

	w := httptest.NewRecorder()
	handler.HandleAddComment(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created comments.Comment
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Text != "great light" || created.PostID != postID {
		t.Errorf("unexpected comment: %+v", created)
	}
}

func TestAddCommentHandler_MissingText(t *testing.T) {
	handler := NewAddCommentHandler(&mockCommentService{})

	req := newAddCommentRequest(t, uuid.New(), map[string]interface{}{
		"postId": uuid.New().String(),
	})

	w := httptest.NewRecorder()
	handler.HandleAddComment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddCommentHandler_PostNotFound(t *testing.T) {
	mockService := &mockCommentService{
		addFunc: func(ctx context.Context, actorID uuid.UUID, req comments.AddCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrPostNotFound
		},
	}
	handler := NewAddCommentHandler(mockService)

	req := newAddCommentRequest(t, uuid.New(), comments.AddCommentRequest{
		PostID: uuid.New(),
		Text:   "hello",
	})

	w := httptest.NewRecorder()
	handler.HandleAddComment(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddCommentHandler_Unauthenticated(t *testing.T) {
	handler := NewAddCommentHandler(&mockCommentService{})

	bodyBytes, _ := json.Marshal(comments.AddCommentRequest{PostID: uuid.New(), Text: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/add-comment", bytes.NewBuffer(bodyBytes))

	w := httptest.NewRecorder()
	handler.HandleAddComment(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
