package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const searchResultLimit = 20

type userService struct {
	repo    Repository
	follows FollowReader
	logger  *slog.Logger
}

// NewService creates a new user service instance
func NewService(repo Repository, follows FollowReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:    repo,
		follows: follows,
		logger:  logger,
	}
}

// GetProfile assembles a profile view: identity fields, follower/following
// counts from the graph, and the post grid with like counts resolved in one
// query. For foreign profiles the viewer's follow state is included.
func (s *userService) GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, following, err := s.follows.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count follow edges: %w", err)
	}

	posts, err := s.repo.ListPostPreviews(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile posts: %w", err)
	}

	view := &ProfileView{
		Username:       user.Username,
		Avatar:         user.Avatar,
		Name:           user.Name,
		Bio:            user.Bio,
		FollowersCount: followers,
		FollowingCount: following,
		TotalPosts:     len(posts),
		Posts:          posts,
	}

	if viewerID != userID {
		isFollowing, err := s.follows.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow state: %w", err)
		}
		view.IsFollowing = &isFollowing
	}

	return view, nil
}

// UpdateProfile applies a partial edit to the caller's own profile
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*User, error) {
	req.Name = strings.TrimSpace(req.Name)

	updated, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user", userID)
	return updated, nil
}

// SearchUsers finds users by username substring, excluding the caller
func (s *userService) SearchUsers(ctx context.Context, viewerID uuid.UUID, query string) ([]*UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*UserSummary{}, nil
	}

	results, err := s.repo.Search(ctx, query, viewerID, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return results, nil
}
