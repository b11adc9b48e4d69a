package graph

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for follow-edge persistence
type Repository interface {
	// ToggleFollow atomically flips the edge: a conditional insert keyed on
	// the (follower, followee) pair, or a delete when the edge exists. The
	// follow notification for the insert transition is appended in the same
	// transaction. Returns the resulting state.
	ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (following bool, err error)

	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
}

// Service defines the business logic interface for graph operations
type Service interface {
	// ToggleFollow follows or unfollows target on behalf of actor.
	// Fails with ErrSelfFollow when actor == target.
	ToggleFollow(ctx context.Context, actorID, targetID uuid.UUID) (*ToggleFollowResponse, error)
}
