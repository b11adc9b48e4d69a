package users

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when a username already belongs to another user
	ErrUsernameTaken = errors.New("username already taken")
)
