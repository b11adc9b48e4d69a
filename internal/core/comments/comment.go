package comments

import (
	"time"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// Comment is a flat (non-threaded) comment on a post
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"postId" db:"post_id"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id"`
}

// CommentView is a comment joined with its author's public identity,
// hydrated in the listing query rather than per comment.
type CommentView struct {
	CreatedAt time.Time         `json:"createdAt"`
	Text      string            `json:"text"`
	Author    *posts.AuthorView `json:"author"`
	ID        uuid.UUID         `json:"id"`
	PostID    uuid.UUID         `json:"postId"`
}

// AddCommentRequest is the validated input for comment creation
type AddCommentRequest struct {
	PostID uuid.UUID `json:"postId" validate:"required"`
	Text   string    `json:"text" validate:"required"`
}
