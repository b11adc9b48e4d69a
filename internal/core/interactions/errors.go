package interactions

import "errors"

// ErrPostNotFound indicates the post being liked or saved doesn't exist
var ErrPostNotFound = errors.New("post not found")
