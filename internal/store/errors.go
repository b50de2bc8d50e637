package store

import "errors"

var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrCourseNotFound    = errors.New("course not found")
)
