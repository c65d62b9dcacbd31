package contract

import "errors"

// Sentinel errors shared between repositories and usecases so callers can
// branch with errors.Is without depending on the storage implementation.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrLessonNotFound = errors.New("lesson not found")
)
