package guard

import "errors"

// ErrInvalidType is the sentinel wrapped by every Strict and Assert
// failure, detectable with errors.Is. The package defines no other error
// conditions: the plain predicate form reports invalid input as false,
// never as an error.
var ErrInvalidType = errors.New("invalid type")
