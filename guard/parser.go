package guard

// Parser narrows an untyped value to T. The boolean reports whether the
// value matched. Failure is always signalled through the second return
// value, never through a sentinel result: nil is a legitimate narrowed
// value for parsers that validate nil.
//
// Parsers receive the Helpers bundle on every invocation so they can
// inspect compound inputs without re-implementing membership and
// property logic.
type Parser[T any] func(v any, h Helpers) (T, bool)

// Check is a plain boolean predicate over an untyped value, the shape in
// which guards are handed to the structural helpers. Guard.Is satisfies
// it directly.
type Check func(v any) bool
