package users

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account profile tracked by the service. Credential
// material (passwords, sessions) is owned by an external identity provider
// and never stored here; the bearer token presented on each request resolves
// to a row in this table.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Username  string    `json:"username" db:"username"`
	Name      string    `json:"name,omitempty" db:"name"`
	Bio       string    `json:"bio,omitempty" db:"bio"`
	Avatar    string    `json:"avatar,omitempty" db:"avatar"`
	ID        uuid.UUID `json:"id" db:"id"`
	IsPrivate bool      `json:"isPrivate" db:"is_private"`
}

// ProfilePost is a profile-grid entry: images plus derived like count
type ProfilePost struct {
	Images    []string  `json:"images"`
	LikeCount int       `json:"likeCount"`
	ID        uuid.UUID `json:"id"`
}

// ProfileView is the full profile payload returned for both the caller's
// own profile and foreign profiles. IsFollowing is only populated when a
// profile is viewed by someone else.
type ProfileView struct {
	Username       string         `json:"username"`
	Avatar         string         `json:"avatar,omitempty"`
	Name           string         `json:"name,omitempty"`
	Bio            string         `json:"bio,omitempty"`
	Posts          []*ProfilePost `json:"posts"`
	FollowersCount int            `json:"followersCount"`
	FollowingCount int            `json:"followingCount"`
	TotalPosts     int            `json:"totalPosts"`
	IsFollowing    *bool          `json:"isFollowing,omitempty"`
}

// UpdateProfileRequest is the validated input for profile edits.
// Name is required; avatar and bio are only written when provided.
type UpdateProfileRequest struct {
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url"`
	Bio    *string `json:"bio,omitempty" validate:"omitempty,max=200"`
	Name   string  `json:"name" validate:"required,min=2,max=20"`
}

// UserSummary is the minimal search-result representation
type UserSummary struct {
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	ID       uuid.UUID `json:"id"`
}
