package posts

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a single media post: an ordered set of image URLs with a
// caption and hashtags. Like counts are never stored on the post row; they
// are always derived from the like edge set at read time.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Caption   string    `json:"caption" db:"caption"`
	Images    []string  `json:"images" db:"images"`
	Hashtags  []string  `json:"hashtags" db:"hashtags"`
	ID        uuid.UUID `json:"id" db:"id"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id"`
}

// AuthorView is the public identity summary attached to posts, comments and
// notifications wherever an actor needs to be displayed.
type AuthorView struct {
	Username string    `json:"username"`
	Avatar   string    `json:"avatar,omitempty"`
	ID       uuid.UUID `json:"id"`
}

// PostPreview is the compact grid representation used by profile pages and
// the liked/saved listings: images plus a derived like count.
type PostPreview struct {
	Images    []string  `json:"images"`
	LikeCount int       `json:"likeCount"`
	ID        uuid.UUID `json:"id"`
}

// ViewerState carries the per-requesting-user annotations attached to a
// post. LikeCount rides along because it is resolved in the same batch pass.
type ViewerState struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
	IsSaved   bool `json:"isSaved"`
}

// PostView is a fully hydrated post: the record itself, the author summary,
// and the viewer's annotations.
type PostView struct {
	Post   *Post       `json:"post"`
	Author *AuthorView `json:"author"`
	ViewerState
}

// CreatePostRequest is the validated input for post creation.
// Bounds mirror the public API contract: at least one image URL and at
// least one hashtag are required, the caption may be empty.
type CreatePostRequest struct {
	Caption  string   `json:"caption" validate:"omitempty,max=2200"`
	Images   []string `json:"images" validate:"required,min=1,dive,url"`
	Hashtags []string `json:"hashtags" validate:"required,min=1,dive,min=1"`
}
