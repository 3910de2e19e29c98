package guard

import "fmt"

// Predicate is the type-erased view of a Guard: the form stored in a
// Registry and consumed by callers that do not need the narrowed type.
type Predicate interface {
	Name() string
	Is(v any) bool
	Strict(v any, msg ...string) error
	Validate(v any) Result
}

// Guard wraps a Parser into a composable, self-describing predicate.
//
// Guards are immutable values: every derived form (Optional, NotEmpty,
// Or, Extend) is a new Guard and the original is never modified, so a
// guard built once can be shared and reused indefinitely.
type Guard[T any] struct {
	name  string
	parse Parser[T]
}

var _ Predicate = Guard[any]{}

// New builds a Guard from a named parser. The name shows up in default
// Strict and Assert messages and serves as the registry key.
func New[T any](name string, parse Parser[T]) Guard[T] {
	return Guard[T]{name: name, parse: parse}
}

// Name returns the guard's name.
func (g Guard[T]) Name() string { return g.name }

// Named returns a copy of the guard under a different name.
func (g Guard[T]) Named(name string) Guard[T] {
	g.name = name
	return g
}

// Parse runs the underlying parser and returns the narrowed value along
// with whether the input matched.
func (g Guard[T]) Parse(v any) (T, bool) {
	if g.parse == nil {
		var zero T
		return zero, false
	}
	return g.parse(v, Helpers{})
}

// Is is the plain predicate form: true iff the value matches. It never
// mutates the input and, for guards built from total parsers, never
// panics.
func (g Guard[T]) Is(v any) bool {
	_, ok := g.Parse(v)
	return ok
}

// Strict behaves like Is but reports failure as an error wrapping
// ErrInvalidType, carrying either the supplied message or a default one
// naming the guard.
func (g Guard[T]) Strict(v any, msg ...string) error {
	if g.Is(v) {
		return nil
	}
	if len(msg) > 0 && msg[0] != "" {
		return fmt.Errorf("%w: %s", ErrInvalidType, msg[0])
	}
	name := g.name
	if name == "" {
		name = "guard"
	}
	return fmt.Errorf("%w: value does not satisfy %s", ErrInvalidType, name)
}

// Assert is the panicking form of Strict: it returns normally only when
// the value matches, and otherwise panics with the same error Strict
// would return.
func (g Guard[T]) Assert(v any, msg ...string) {
	if err := g.Strict(v, msg...); err != nil {
		panic(err)
	}
}

// Optional derives a guard that additionally accepts nil, narrowing it
// to the zero value of T.
func (g Guard[T]) Optional() Guard[T] {
	base := g
	return Guard[T]{
		name: base.name + "?",
		parse: func(v any, _ Helpers) (T, bool) {
			if isNil(v) {
				var zero T
				return zero, true
			}
			return base.Parse(v)
		},
	}
}

// NotEmpty derives a guard that rejects the fixed emptiness set (nil,
// empty string, zero-length slice or array, zero-key map) before running
// the base check.
func (g Guard[T]) NotEmpty() Guard[T] {
	base := g
	return Guard[T]{
		name: "non-empty " + base.name,
		parse: func(v any, _ Helpers) (T, bool) {
			if Empty.Is(v) {
				var zero T
				return zero, false
			}
			return base.Parse(v)
		},
	}
}

// Or derives the union of two same-typed guards. The left parser runs
// first and its narrowed value wins when both sides would match. For
// guards of different narrowed types use Union.
func (g Guard[T]) Or(other Guard[T]) Guard[T] {
	left, right := g, other
	return Guard[T]{
		name: left.name + "|" + right.name,
		parse: func(v any, _ Helpers) (T, bool) {
			if out, ok := left.Parse(v); ok {
				return out, true
			}
			return right.Parse(v)
		},
	}
}

// Extend derives a refinement: the base guard must pass first, and only
// then does the refinement parser run on the already-narrowed value.
// Refinements only filter further; a failure on either side rejects the
// input. For refinements that change the narrowed type use Refine.
func (g Guard[T]) Extend(refine Parser[T]) Guard[T] {
	base := g
	return Guard[T]{
		name: base.name,
		parse: func(v any, h Helpers) (T, bool) {
			out, ok := base.Parse(v)
			if !ok {
				var zero T
				return zero, false
			}
			if refine == nil {
				return out, true
			}
			return refine(out, h)
		},
	}
}

// Validate runs the guard and reports the outcome as a Result: the
// narrowed value on success, a single fixed-message issue on failure.
// Callers needing per-field diagnostics should build their own
// parser-level messaging.
func (g Guard[T]) Validate(v any) Result {
	if out, ok := g.Parse(v); ok {
		return Result{Value: out}
	}
	return Result{Issues: []Issue{{Message: "Invalid type"}}}
}

// Union composes guards of different narrowed types into a Guard[any].
// Like Or it is left-biased: the left parser runs first and its value
// wins. Chaining Union calls builds n-ary unions.
func Union[T, U any](left Guard[T], right Guard[U]) Guard[any] {
	return Guard[any]{
		name: left.name + "|" + right.name,
		parse: func(v any, _ Helpers) (any, bool) {
			if out, ok := left.Parse(v); ok {
				return out, true
			}
			if out, ok := right.Parse(v); ok {
				return out, true
			}
			return nil, false
		},
	}
}

// Refine narrows a Guard[T] into a Guard[U]: the base guard must pass,
// then fn runs on the already-typed value. Failures short-circuit.
func Refine[T, U any](base Guard[T], name string, fn func(T, Helpers) (U, bool)) Guard[U] {
	return Guard[U]{
		name: name,
		parse: func(v any, h Helpers) (U, bool) {
			out, ok := base.Parse(v)
			if !ok {
				var zero U
				return zero, false
			}
			return fn(out, h)
		},
	}
}
