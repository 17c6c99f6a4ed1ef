package task

import "errors"

// Task list errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("task title cannot be empty")
	ErrTitleTooLong = errors.New("task title cannot exceed 255 characters")
	ErrNilTask      = errors.New("task cannot be nil")

	// Business logic errors
	ErrNoUser       = errors.New("task list is not bound to a user")
	ErrTaskNotFound = errors.New("task not found")
)
