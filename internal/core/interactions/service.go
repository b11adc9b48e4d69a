package interactions

import (
	"context"
	"fmt"
	"log/slog"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

type interactionService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new interaction service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &interactionService{
		repo:   repo,
		logger: logger,
	}
}

// ToggleLike flips the viewer's like edge on the post. The returned count is
// always the cardinality of the like-edge set, never a cached counter.
func (s *interactionService) ToggleLike(ctx context.Context, actorID, postID uuid.UUID) (*ToggleLikeResponse, error) {
	liked, count, err := s.repo.ToggleLike(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("like toggled",
		"actor", actorID,
		"post", postID,
		"liked", liked,
		"likeCount", count)

	return &ToggleLikeResponse{Liked: liked, LikeCount: count}, nil
}

// ToggleSave flips the viewer's private bookmark on the post
func (s *interactionService) ToggleSave(ctx context.Context, actorID, postID uuid.UUID) (*ToggleSaveResponse, error) {
	saved, err := s.repo.ToggleSave(ctx, actorID, postID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("save toggled",
		"actor", actorID,
		"post", postID,
		"saved", saved)

	return &ToggleSaveResponse{Saved: saved}, nil
}

func (s *interactionService) ListLikedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error) {
	previews, err := s.repo.ListLikedPosts(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked posts: %w", err)
	}
	return previews, nil
}

func (s *interactionService) ListSavedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error) {
	previews, err := s.repo.ListSavedPosts(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved posts: %w", err)
	}
	return previews, nil
}
