package graph

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed pair edge in the social graph. A single row carries
// both sides of the relationship: "follower follows followee" and "followee
// is followed by follower" are projections of the same record, so the two
// views can never disagree.
type Follow struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	FollowerID uuid.UUID `json:"followerId" db:"follower_id"`
	FolloweeID uuid.UUID `json:"followeeId" db:"followee_id"`
}

// ToggleFollowResponse reports the resulting edge state so a retried call
// always converges to a well-defined answer.
type ToggleFollowResponse struct {
	Following bool `json:"following"`
}
