package binder

import "errors"

// Common binding errors.
var (
	ErrValidation   = errors.New("validation failed")
	ErrMissingValue = errors.New("missing value")
	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrInvalidForm  = errors.New("invalid form data")
)
