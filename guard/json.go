package guard

import "reflect"

// The JSON guards form a recursive structural family. Evaluation is
// eager and full: a single non-JSON value nested anywhere rejects the
// whole structure.

// JSONPrimitive matches nil, booleans, strings and any numeric kind.
var JSONPrimitive = New("json primitive", func(v any, _ Helpers) (any, bool) {
	return v, jsonPrimitiveOK(v)
})

// JSONArray matches a slice or array whose every element is a JSON
// value, narrowed to []any.
var JSONArray = New("json array", func(v any, _ Helpers) ([]any, bool) {
	if !jsonArrayOK(v) {
		return nil, false
	}
	return Slice.Parse(v)
})

// JSONObject matches a string-keyed map whose every value is a JSON
// value, narrowed to map[string]any. Only plain maps qualify: struct
// instances, time values and the like are not JSON objects even when
// they serialize cleanly.
var JSONObject = New("json object", func(v any, _ Helpers) (map[string]any, bool) {
	if !jsonObjectOK(v) {
		return nil, false
	}
	return Record.Parse(v)
})

// JSONValue matches any member of the three JSON families.
var JSONValue = New("json value", func(v any, _ Helpers) (any, bool) {
	return v, jsonValueOK(v)
})

func jsonPrimitiveOK(v any) bool {
	if isNil(v) {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func jsonArrayOK(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !jsonValueOK(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func jsonObjectOK(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return false
	}
	iter := rv.MapRange()
	for iter.Next() {
		if !jsonValueOK(iter.Value().Interface()) {
			return false
		}
	}
	return true
}

func jsonValueOK(v any) bool {
	return jsonPrimitiveOK(v) || jsonArrayOK(v) || jsonObjectOK(v)
}
