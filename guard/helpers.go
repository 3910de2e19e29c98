package guard

import "reflect"

// Helpers bundles the structural helpers threaded into every parser
// invocation. It carries no state; the methods delegate to the
// package-level functions so parser authors and standalone callers share
// one implementation.
type Helpers struct{}

func (Helpers) HasKey(v any, key string, checks ...Check) bool {
	return HasKey(v, key, checks...)
}

func (Helpers) HasOptionalKey(v any, key string, checks ...Check) bool {
	return HasOptionalKey(v, key, checks...)
}

func (Helpers) TupleAt(v any, index int, check Check) bool {
	return TupleAt(v, index, check)
}

func (Helpers) Includes(collection, item any) bool {
	return Includes(collection, item)
}

// HasKey reports whether key is present on v and, when checks are
// supplied, whether every check holds for the value under that key.
//
// For string-keyed maps presence means the key exists. For structs (and
// pointers to structs) presence means an exported field of that name,
// including fields promoted from embedded structs.
func HasKey(v any, key string, checks ...Check) bool {
	val, ok := lookupKey(v, key)
	if !ok {
		return false
	}
	for _, check := range checks {
		if check == nil || !check(val) {
			return false
		}
	}
	return true
}

// HasOptionalKey is the optional-property form of HasKey: an absent key
// or a nil value satisfies it, and a present non-nil value must pass the
// supplied checks.
func HasOptionalKey(v any, key string, checks ...Check) bool {
	val, ok := lookupKey(v, key)
	if !ok || isNil(val) {
		return true
	}
	for _, check := range checks {
		if check == nil || !check(val) {
			return false
		}
	}
	return true
}

// TupleAt reports whether index is a valid position of a slice or array
// and the element at that position passes check. A nil check degrades to
// a pure presence test.
func TupleAt(v any, index int, check Check) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	if index < 0 || index >= rv.Len() {
		return false
	}
	if check == nil {
		return true
	}
	return check(rv.Index(index).Interface())
}

// Includes reports whether item equals a member of the slice or array
// collection. Comparable values use ==; anything else falls back to deep
// equality. It never panics.
func Includes(collection, item any) bool {
	rv := reflect.ValueOf(collection)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equalValues(rv.Index(i).Interface(), item) {
			return true
		}
	}
	return false
}

func lookupKey(v any, key string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}

	return nil, false
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// isNil covers both the untyped nil interface and typed nil carriers
// (pointers, maps, slices, channels, functions).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
