// Package binder validates raw HTTP request input with guards.
//
// A Target names a single piece of request input (query parameter, form
// field, header, path parameter, JSON body or one of its fields) and
// knows how to extract its raw untyped value. Check runs a guard over
// the extracted value and returns the narrowed result; Value additionally
// applies a transform to it.
//
// # Usage
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    email, err := binder.Check(r, binder.Query("email"), guard.Email)
//	    if err != nil {
//	        binder.WriteError(w, err)
//	        return
//	    }
//	    // email is a validated address string
//	}
//
// Transforms convert the narrowed value into whatever the handler needs:
//
//	page, err := binder.Value(r, binder.Query("page"), guard.Numeric,
//	    func(f float64) int { return int(f) })
//
// # Error Handling
//
// Extraction and validation failures are sentinel-wrapped errors
// (ErrMissingValue, ErrValidation, ErrInvalidJSON, ErrInvalidForm)
// detectable with errors.Is. WriteError maps them to a 400 response; any
// other error maps to 500.
package binder
