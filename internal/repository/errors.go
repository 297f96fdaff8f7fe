package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when trying to create a user with an existing email
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrForeignKey is returned when an insert references a row that does
	// not exist (e.g. a CE record pointing at an unknown course)
	ErrForeignKey = errors.New("referenced record does not exist")
)
