package interactions

import (
	"context"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// Repository defines the interface for like/save edge persistence.
//
// The toggle methods are the serialization point for concurrent identical
// requests: each is a conditional insert-or-delete keyed on the unique
// (user, post) pair, never a read-then-write across two round trips.
type Repository interface {
	// ToggleLike flips the like edge and returns the resulting state plus
	// the post's like count computed from the edge set inside the same
	// transaction. The like notification for an insert transition is
	// appended in that transaction too.
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (liked bool, likeCount int, err error)

	// ToggleSave flips the save edge. Saves never notify.
	ToggleSave(ctx context.Context, userID, postID uuid.UUID) (saved bool, err error)

	// LikeCounts returns like-edge cardinality for each post in one query.
	// Posts with no likes are absent from the map.
	LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error)

	// LikedSet returns which of the given posts the user has liked, in one
	// pass over the user's like edges.
	LikedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// SavedSet returns which of the given posts the user has saved, in one
	// pass over the user's save edges.
	SavedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// ListLikedPosts returns previews of every post the user has liked
	ListLikedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error)

	// ListSavedPosts returns previews of every post the user has saved
	ListSavedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error)
}

// Service defines the business logic interface for like/save operations
type Service interface {
	ToggleLike(ctx context.Context, actorID, postID uuid.UUID) (*ToggleLikeResponse, error)
	ToggleSave(ctx context.Context, actorID, postID uuid.UUID) (*ToggleSaveResponse, error)
	ListLikedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error)
	ListSavedPosts(ctx context.Context, actorID uuid.UUID) ([]*posts.PostPreview, error)
}
