package graph

import "errors"

var (
	// ErrSelfFollow indicates a user attempted to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrUserNotFound indicates the follow actor or target doesn't exist
	ErrUserNotFound = errors.New("user not found")
)
