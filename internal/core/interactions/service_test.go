package interactions

import (
	"context"
	"testing"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInteractionRepository is a mock implementation of Repository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockInteractionRepository) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func (m *MockInteractionRepository) LikedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *MockInteractionRepository) SavedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *MockInteractionRepository) ListLikedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostPreview), args.Error(1)
}

func (m *MockInteractionRepository) ListSavedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostPreview), args.Error(1)
}

// TestToggleLike_Like tests liking a post
func TestToggleLike_Like(t *testing.T) {
	mockRepo := new(MockInteractionRepository)

	actorID := uuid.New()
	postID := uuid.New()

	mockRepo.On("ToggleLike", mock.Anything, actorID, postID).Return(true, 5, nil)

	service := NewService(mockRepo, nil)

	resp, err := service.ToggleLike(context.Background(), actorID, postID)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 5, resp.LikeCount)

	mockRepo.AssertExpectations(t)
}

// TestToggleLike_Unlike tests that a second toggle removes the like
func TestToggleLike_Unlike(t *testing.T) {
	mockRepo := new(MockInteractionRepository)

	actorID := uuid.New()
	postID := uuid.New()

	mockRepo.On("ToggleLike", mock.Anything, actorID, postID).Return(false, 4, nil)

	service := NewService(mockRepo, nil)

	resp, err := service.ToggleLike(context.Background(), actorID, postID)
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, 4, resp.LikeCount)
}

// TestToggleLike_PostNotFound tests liking a missing post
func TestToggleLike_PostNotFound(t *testing.T) {
	mockRepo := new(MockInteractionRepository)

	actorID := uuid.New()
	postID := uuid.New()

	mockRepo.On("ToggleLike", mock.Anything, actorID, postID).Return(false, 0, ErrPostNotFound)

	service := NewService(mockRepo, nil)

	resp, err := service.ToggleLike(context.Background(), actorID, postID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Nil(t, resp)
}

// TestToggleSave_Save tests saving a post
func TestToggleSave_Save(t *testing.T) {
	mockRepo := new(MockInteractionRepository)

	actorID := uuid.New()
	postID := uuid.New()

	mockRepo.On("ToggleSave", mock.Anything, actorID, postID).Return(true, nil)

	service := NewService(mockRepo, nil)

	resp, err := service.ToggleSave(context.Background(), actorID, postID)
	require.NoError(t, err)
	assert.True(t, resp.Saved)

	mockRepo.AssertExpectations(t)
}

// TestListLikedPosts tests the liked-posts collection listing
func TestListLikedPosts(t *testing.T) {
	mockRepo := new(MockInteractionRepository)

	actorID := uuid.New()
	previews := []*posts.PostPreview{
		{ID: uuid.New(), Images: []string{"https://img.example/a.jpg"}, LikeCount: 3},
	}

	mockRepo.On("ListLikedPosts", mock.Anything, actorID).Return(previews, nil)

	service := NewService(mockRepo, nil)

	got, err := service.ListLikedPosts(context.Background(), actorID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, previews[0].ID, got[0].ID)
}
