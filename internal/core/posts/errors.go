package posts

import "errors"

var (
	// ErrPostNotFound indicates the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor indicates the actor does not own the post
	ErrNotPostAuthor = errors.New("not the post author")
)
