package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidOperation is returned when a business rule is violated.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidArgument is returned when a computed value falls outside its valid range.
	ErrInvalidArgument = errors.New("invalid argument")
)
