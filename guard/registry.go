package guard

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/guardkit/pkg/casing"
)

// Registry is a flat mapping from guard name to guard. Registries are
// immutable by convention: every builder returns a fresh map and a
// registry handed to Extend is never modified.
type Registry map[string]Predicate

// Get looks up a guard by its registry key.
func (r Registry) Get(name string) (Predicate, bool) {
	p, ok := r[name]
	return p, ok
}

// Names returns the registry keys in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Builtin returns a fresh registry holding every built-in predicate
// under its PascalCase name.
func Builtin() Registry {
	return Registry{
		"Any":     Any,
		"Nil":     Nil,
		"Defined": Defined,
		"Bool":    Bool,
		"String":  String,
		"Int":     Int,
		"Uint":    Uint,
		"Float":   Float,
		"Number":  Number,
		"Numeric": Numeric,
		"Empty":   Empty,

		"Slice":  Slice,
		"Record": Record,

		"JSONPrimitive": JSONPrimitive,
		"JSONArray":     JSONArray,
		"JSONObject":    JSONObject,
		"JSONValue":     JSONValue,

		"Email":          Email,
		"Phone":          Phone,
		"UUID":           UUID,
		"UUIDv4":         UUIDv4,
		"IPv4":           IPv4,
		"IPv6":           IPv6,
		"CommaSeparated": CommaSeparated,
		"DotSeparated":   DotSeparated,

		"URL":          URL,
		"HTTPRequest":  HTTPRequest,
		"HTTPResponse": HTTPResponse,
		"Context":      Context,
		"Func":         Func,
		"Chan":         Chan,
		"Time":         Time,
		"Duration":     Duration,
		"Error":        ErrorValue,
	}
}

// Batch builds a registry from a name-to-parser map, independent of any
// existing registry. Keys are normalized to "is" + PascalCase whatever
// the supplied casing, so {"meatball_sub": ...} binds under
// "isMeatballSub".
func Batch(parsers map[string]Parser[any]) Registry {
	out := make(Registry, len(parsers))
	for name, parse := range parsers {
		out["is"+casing.Pascal(name)] = New(name, parse)
	}
	return out
}

// Extend merges guards built from the supplied parsers over a copy of
// base. Names are kept exactly as supplied and win key collisions. A nil
// base defaults to the built-in registry.
func Extend(base Registry, parsers map[string]Parser[any]) Registry {
	if base == nil {
		base = Builtin()
	}
	out := make(Registry, len(base)+len(parsers))
	maps.Copy(out, base)
	for name, parse := range parsers {
		out[name] = New(name, parse)
	}
	return out
}
