package guard

import "reflect"

// Slice matches any slice or array and narrows it to []any.
var Slice = New("slice", func(v any, _ Helpers) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
})

// Record matches any string-keyed map and narrows it to map[string]any.
var Record = New("record", func(v any, _ Helpers) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
})

// SliceOf builds a guard matching a slice or array whose every element
// passes elem, narrowed to []T.
func SliceOf[T any](elem Guard[T]) Guard[[]T] {
	return New("[]"+elem.Name(), func(v any, _ Helpers) ([]T, bool) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, false
		}
		out := make([]T, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, ok := elem.Parse(rv.Index(i).Interface())
			if !ok {
				return nil, false
			}
			out = append(out, ev)
		}
		return out, true
	})
}

// MapOf builds a guard matching a string-keyed map whose every value
// passes elem, narrowed to map[string]T.
func MapOf[T any](elem Guard[T]) Guard[map[string]T] {
	return New("map of "+elem.Name(), func(v any, h Helpers) (map[string]T, bool) {
		m, ok := Record.Parse(v)
		if !ok {
			return nil, false
		}
		out := make(map[string]T, len(m))
		for key, val := range m {
			ev, ok := elem.Parse(val)
			if !ok {
				return nil, false
			}
			out[key] = ev
		}
		return out, true
	})
}

// Tuple builds a guard matching a slice or array with exactly one
// element per supplied guard, each element passing its positional guard.
func Tuple(elems ...Predicate) Guard[[]any] {
	return New("tuple", func(v any, h Helpers) ([]any, bool) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, false
		}
		if rv.Len() != len(elems) {
			return nil, false
		}
		out := make([]any, len(elems))
		for i, p := range elems {
			if !h.TupleAt(v, i, p.Is) {
				return nil, false
			}
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	})
}

// Enum builds a guard matching any of the allowed literal values,
// the usual way to validate enum-like unions.
func Enum[T comparable](allowed ...T) Guard[T] {
	values := allowed
	return New("enum", func(v any, h Helpers) (T, bool) {
		var zero T
		if !h.Includes(values, v) {
			return zero, false
		}
		out, ok := v.(T)
		if !ok {
			return zero, false
		}
		return out, true
	})
}
