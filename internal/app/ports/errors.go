package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// ErrValidation marks request-shape failures the HTTP layer maps to 400.
	ErrValidation = errors.New("validation failed")
)
