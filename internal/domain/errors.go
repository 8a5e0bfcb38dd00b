// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPriority is returned when a priority label is not one of
	// low, medium or high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrEmptyTaskTitle is returned when a task snapshot has no title.
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)
