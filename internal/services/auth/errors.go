package auth

import "errors"

// Registration validation errors. They are logged, never returned: callers
// of Session only see a boolean.
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)
