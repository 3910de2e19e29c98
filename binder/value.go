package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/guardkit/guard"
)

// Check extracts the target's raw value from the request and runs the
// guard over it as a plain predicate, returning the narrowed value. A
// rejected value reports as an ErrValidation-wrapped error naming the
// target.
func Check[T any](r *http.Request, t Target, g guard.Guard[T]) (T, error) {
	var zero T

	raw, err := t.Extract(r)
	if err != nil {
		return zero, err
	}

	out, ok := g.Parse(raw)
	if !ok {
		return zero, fmt.Errorf("%w: invalid value for %q", ErrValidation, t.Name)
	}
	return out, nil
}

// Value is Check plus a transform applied to the narrowed value. The
// transform must not be nil; use Check when the narrowed value is what
// the handler needs.
func Value[T, U any](r *http.Request, t Target, g guard.Guard[T], transform func(T) U) (U, error) {
	out, err := Check(r, t, g)
	if err != nil {
		var zero U
		return zero, err
	}
	return transform(out), nil
}

// WriteError writes err as a JSON error response. Extraction and
// validation failures map to 400; anything else to 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrMissingValue),
		errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrInvalidForm):
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
