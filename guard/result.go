package guard

// Issue describes a single validation failure inside a Result.
type Issue struct {
	Message string `json:"message"`
}

// Result is the discriminated outcome of Guard.Validate: the narrowed
// value on success, one or more issues on failure. The failure message
// is fixed and non-configurable.
type Result struct {
	Value  any     `json:"value,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

// Ok reports whether the result carries no issues.
func (r Result) Ok() bool { return len(r.Issues) == 0 }
