package guard

import "reflect"

// Any matches every value, including nil.
var Any = New("any", func(v any, _ Helpers) (any, bool) {
	return v, true
})

// Nil matches the untyped nil interface and typed nil pointers, maps,
// slices, channels and functions. In this library nil stands in for both
// null and undefined.
var Nil = New("nil", func(v any, _ Helpers) (any, bool) {
	return nil, isNil(v)
})

// Defined matches everything Nil does not.
var Defined = New("defined", func(v any, _ Helpers) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	return v, true
})

// Bool matches boolean values.
var Bool = New("bool", func(v any, _ Helpers) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
})

// String matches string values.
var String = New("string", func(v any, _ Helpers) (string, bool) {
	s, ok := v.(string)
	return s, ok
})

// Int matches any signed integer kind and narrows it to int64.
var Int = New("int", func(v any, _ Helpers) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	}
	return 0, false
})

// Uint matches any unsigned integer kind and narrows it to uint64.
var Uint = New("uint", func(v any, _ Helpers) (uint64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
})

// Float matches float32 and float64 values and narrows them to float64.
var Float = New("float", func(v any, _ Helpers) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
})

// Number matches any built-in numeric kind and narrows it to float64.
// NaN and infinities count as numbers here; use Numeric for the
// stricter, parse-like check.
var Number = New("number", func(v any, _ Helpers) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
})
