package interactions

import (
	"time"

	"github.com/google/uuid"
)

// LikeEdge is a (user, post) like relationship. At most one exists per pair;
// its existence is the sole source of truth for like counts.
type LikeEdge struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
}

// SaveEdge is a (user, post) bookmark. Saves are private per-user state:
// never visible to other users and never notified.
type SaveEdge struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
}

// ToggleLikeResponse reports the resulting edge state plus the like count
// derived fresh from the edge set in the same transaction.
type ToggleLikeResponse struct {
	LikeCount int  `json:"likeCount"`
	Liked     bool `json:"liked"`
}

// ToggleSaveResponse reports the resulting bookmark state
type ToggleSaveResponse struct {
	Saved bool `json:"saved"`
}
