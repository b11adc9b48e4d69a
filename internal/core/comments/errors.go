package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotCommentAuthor indicates the actor does not own the comment
	ErrNotCommentAuthor = errors.New("not the comment author")

	// ErrContentEmpty indicates the comment text is empty after trimming
	ErrContentEmpty = errors.New("comment text cannot be empty")

	// ErrContentTooLong indicates the comment text exceeds the length cap
	ErrContentTooLong = errors.New("comment text too long")
)
