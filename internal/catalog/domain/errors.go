package domain

import "errors"

var (
	// ErrNotFound is returned when a product or category id does not resolve
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps every rejected command input
	ErrValidation = errors.New("validation failed")
)
