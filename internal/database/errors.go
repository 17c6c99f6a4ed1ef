package database

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email is already registered")

	// ErrTaskNotPersisted is returned when updating a task that has no ID yet
	ErrTaskNotPersisted = errors.New("task has not been saved")
)
