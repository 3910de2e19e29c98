package guard

import "reflect"

// The emptiness classification is fixed and closed: nil, the empty
// string, a slice or array of length zero, and a map with zero keys.
// It applies verbatim regardless of the guard it decorates.

var emptyString = New("empty string", func(v any, _ Helpers) (string, bool) {
	s, ok := v.(string)
	if !ok || s != "" {
		return "", false
	}
	return s, true
})

var emptySlice = New("empty slice", func(v any, _ Helpers) (any, bool) {
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0 {
		return v, true
	}
	return nil, false
})

var emptyMap = New("empty map", func(v any, _ Helpers) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Len() == 0 {
		return v, true
	}
	return nil, false
})

// Empty matches exactly the values the NotEmpty derivation rejects. It
// is assembled through Union the same way any caller would build an
// n-ary union.
var Empty = Union(Union(Union(Nil, emptyString), emptySlice), emptyMap).Named("empty")
