package comments

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for comment persistence
type Repository interface {
	// Create inserts the comment and, in the same transaction, appends the
	// comment notification for the post author (skipped when the commenter
	// is the author). Returns ErrPostNotFound when the post is absent.
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByPost returns the post's comments newest first, each joined with
	// the author's username and avatar in the listing query.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*CommentView, error)
}

// Service defines the business logic interface for comment operations
type Service interface {
	AddComment(ctx context.Context, actorID uuid.UUID, req AddCommentRequest) (*Comment, error)

	// DeleteComment removes a comment. Only its author may delete it; there
	// are no cascading side effects on likes or counters.
	DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error

	ListComments(ctx context.Context, postID uuid.UUID) ([]*CommentView, error)
}
