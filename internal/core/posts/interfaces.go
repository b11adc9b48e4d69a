package posts

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for post persistence
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ViewerStateResolver batches per-viewer annotations (like count, isLiked,
// isSaved) onto a set of posts. Implemented by the interactions layer.
type ViewerStateResolver interface {
	Resolve(ctx context.Context, viewerID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]ViewerState, error)
}

// AuthorResolver returns public identity summaries for a batch of user IDs.
// Missing users are simply absent from the result map.
type AuthorResolver interface {
	GetAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*AuthorView, error)
}

// Service defines the business logic interface for post operations
type Service interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*Post, error)

	// DeletePost removes a post. Only the author may delete it.
	DeletePost(ctx context.Context, actorID, postID uuid.UUID) error

	// GetPost returns a single post hydrated with its author summary and the
	// viewer's like/save state.
	GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*PostView, error)
}
