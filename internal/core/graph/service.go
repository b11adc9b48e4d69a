package graph

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type graphService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new graph service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &graphService{
		repo:   repo,
		logger: logger,
	}
}

// ToggleFollow flips the follow edge between actor and target. The repository
// performs the check-and-flip as one atomic conditional mutation, so a
// double-submitted request serializes into two clean toggles rather than a
// lost update, and a retry after a crash is always safe.
func (s *graphService) ToggleFollow(ctx context.Context, actorID, targetID uuid.UUID) (*ToggleFollowResponse, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	following, err := s.repo.ToggleFollow(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("follow toggled",
		"actor", actorID,
		"target", targetID,
		"following", following)

	return &ToggleFollowResponse{Following: following}, nil
}
