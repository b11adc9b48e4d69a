package users

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateProfile applies a partial profile edit: nil avatar/bio leave the
	// stored values untouched.
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*User, error)

	// Search finds users whose username contains the query, case-insensitive,
	// excluding the given user.
	Search(ctx context.Context, query string, exclude uuid.UUID, limit int) ([]*UserSummary, error)

	// ListPostPreviews returns the user's posts newest first with like counts
	// derived in the same query, for the profile grid.
	ListPostPreviews(ctx context.Context, userID uuid.UUID) ([]*ProfilePost, error)
}

// FollowReader is the slice of the social graph a profile needs: edge
// counts and a single membership check.
type FollowReader interface {
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

// Service defines the business logic interface for profile operations
type Service interface {
	// GetProfile builds the profile view for userID as seen by viewerID.
	// When viewerID != userID the view carries an isFollowing flag.
	GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*ProfileView, error)

	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*User, error)
	SearchUsers(ctx context.Context, viewerID uuid.UUID, query string) ([]*UserSummary, error)
}
