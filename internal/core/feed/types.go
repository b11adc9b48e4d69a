package feed

import (
	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// FeedPost is one feed entry: the post, its author summary, and the
// viewer's annotations.
type FeedPost struct {
	Post   *posts.Post       `json:"post"`
	Author *posts.AuthorView `json:"author"`
	posts.ViewerState
}

// ExplorePost is a discovery entry outside the follow graph: images and the
// derived like count only, no viewer state.
type ExplorePost struct {
	Images    []string  `json:"images"`
	LikeCount int       `json:"likeCount"`
	ID        uuid.UUID `json:"id"`
}
