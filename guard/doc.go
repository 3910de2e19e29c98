// Package guard provides composable, self-describing runtime type guards
// for untyped values.
//
// A guard confirms that an arbitrary `any` value conforms to a statically
// declared type and hands back the narrowed value. Guards are built from
// parsers - plain functions from an untyped value to a typed result - and
// expose several invocation modes on top of the same check: a boolean
// predicate (Is), a typed extraction (Parse), an error-returning form
// (Strict), a panicking form (Assert), and a structured result form
// (Validate).
//
// # Architecture
//
// Four building blocks, leaf-first:
//   - Structural helpers (HasKey, HasOptionalKey, TupleAt, Includes) let
//     parsers inspect compound values without re-deriving membership
//     logic. The Helpers bundle is threaded into every parser invocation.
//   - The guard factory (New) wraps a Parser into a Guard with derived
//     forms: Optional, NotEmpty, Or, Extend. Cross-type composition uses
//     the package-level Union and Refine functions.
//   - The built-in catalogue covers primitives, collections, the
//     recursive JSON value family, string formats (email, phone, UUID,
//     IP addresses) and host shapes (URLs, requests, channels).
//   - Registry builders (Builtin, Batch, Extend) assemble flat
//     name-to-guard maps without shared mutable state.
//
// Everything in this package is a pure, terminating function of its
// input. Guards hold no internal state, never mutate their argument, and
// are safe to build once and share between goroutines.
//
// # Usage
//
//	if guard.Email.Is(v) {
//	    addr, _ := guard.Email.Parse(v)
//	    // addr is the validated address string
//	}
//
//	ID := guard.String.Extend(func(s any, h guard.Helpers) (string, bool) {
//	    str := s.(string)
//	    if len(str) != 12 {
//	        return "", false
//	    }
//	    return str, true
//	})
//
//	StringOrNumber := guard.Union(guard.String, guard.Number)
//
// # Error Handling
//
// The plain predicate form never fails exceptionally: invalid input is
// the expected outcome and reports as false. Strict wraps ErrInvalidType
// so callers can detect it with errors.Is; Assert panics with the same
// error. Panics raised inside caller-supplied parsers propagate
// unmodified - parsers are expected to be total functions.
package guard
