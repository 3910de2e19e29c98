package binder

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Target names a single piece of request input and knows how to extract
// its raw, untyped value. The name appears in validation error messages.
type Target struct {
	Name    string
	Extract func(r *http.Request) (any, error)
}

// Query targets a URL query parameter.
func Query(name string) Target {
	return Target{
		Name: name,
		Extract: func(r *http.Request) (any, error) {
			values := r.URL.Query()
			if !values.Has(name) {
				return nil, fmt.Errorf("%w: query parameter %q", ErrMissingValue, name)
			}
			return values.Get(name), nil
		},
	}
}

// Form targets a field of an urlencoded form body.
func Form(name string) Target {
	return Target{
		Name: name,
		Extract: func(r *http.Request) (any, error) {
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			if !r.PostForm.Has(name) {
				return nil, fmt.Errorf("%w: form field %q", ErrMissingValue, name)
			}
			return r.PostForm.Get(name), nil
		},
	}
}

// Header targets a request header.
func Header(name string) Target {
	return Target{
		Name: name,
		Extract: func(r *http.Request) (any, error) {
			value := r.Header.Get(name)
			if value == "" {
				return nil, fmt.Errorf("%w: header %q", ErrMissingValue, name)
			}
			return value, nil
		},
	}
}

// Path targets a chi URL parameter. The request must have passed through
// a chi router for the parameter to resolve.
func Path(name string) Target {
	return Target{
		Name: name,
		Extract: func(r *http.Request) (any, error) {
			value := chi.URLParam(r, name)
			if value == "" {
				return nil, fmt.Errorf("%w: path parameter %q", ErrMissingValue, name)
			}
			return value, nil
		},
	}
}

// JSONBody targets the whole decoded JSON request body.
func JSONBody() Target {
	return Target{
		Name: "body",
		Extract: func(r *http.Request) (any, error) {
			var v any
			if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
			return v, nil
		},
	}
}

// JSONField targets a single top-level field of a JSON object body.
func JSONField(name string) Target {
	return Target{
		Name: name,
		Extract: func(r *http.Request) (any, error) {
			var m map[string]any
			if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
			v, ok := m[name]
			if !ok {
				return nil, fmt.Errorf("%w: body field %q", ErrMissingValue, name)
			}
			return v, nil
		},
	}
}
