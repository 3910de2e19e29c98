package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/guard"
)

func TestSlice(t *testing.T) {
	t.Run("matches slices and arrays of any element type", func(t *testing.T) {
		assert.True(t, guard.Slice.Is([]any{1, "x"}))
		assert.True(t, guard.Slice.Is([]string{"a"}))
		assert.True(t, guard.Slice.Is([3]int{1, 2, 3}))
		assert.False(t, guard.Slice.Is("abc"))
		assert.False(t, guard.Slice.Is(map[string]any{}))
		assert.False(t, guard.Slice.Is(nil))
	})

	t.Run("narrows to []any", func(t *testing.T) {
		out, ok := guard.Slice.Parse([]int{1, 2})
		require.True(t, ok)
		assert.Equal(t, []any{1, 2}, out)
	})
}

func TestRecord(t *testing.T) {
	t.Run("matches string-keyed maps only", func(t *testing.T) {
		assert.True(t, guard.Record.Is(map[string]any{"a": 1}))
		assert.True(t, guard.Record.Is(map[string]int{"a": 1}))
		assert.False(t, guard.Record.Is(map[int]any{1: "a"}))
		assert.False(t, guard.Record.Is(struct{ A int }{1}))
		assert.False(t, guard.Record.Is(nil))
	})

	t.Run("narrows to map[string]any", func(t *testing.T) {
		out, ok := guard.Record.Parse(map[string]int{"a": 1, "b": 2})
		require.True(t, ok)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, out)
	})
}

func TestSliceOf(t *testing.T) {
	strings := guard.SliceOf(guard.String)

	t.Run("every element must pass", func(t *testing.T) {
		assert.True(t, strings.Is([]any{"a", "b"}))
		assert.True(t, strings.Is([]string{"a"}))
		assert.True(t, strings.Is([]any{}))
		assert.False(t, strings.Is([]any{"a", 1}))
		assert.False(t, strings.Is("ab"))
	})

	t.Run("narrows to a typed slice", func(t *testing.T) {
		out, ok := strings.Parse([]any{"a", "b"})
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, out)
	})

	t.Run("element conversion applies", func(t *testing.T) {
		numbers := guard.SliceOf(guard.Number)
		out, ok := numbers.Parse([]any{1, 2.5, int8(3)})
		require.True(t, ok)
		assert.Equal(t, []float64{1, 2.5, 3}, out)
	})
}

func TestMapOf(t *testing.T) {
	numbers := guard.MapOf(guard.Number)

	t.Run("every value must pass", func(t *testing.T) {
		assert.True(t, numbers.Is(map[string]any{"a": 1, "b": 2.5}))
		assert.False(t, numbers.Is(map[string]any{"a": "x"}))
		assert.False(t, numbers.Is([]any{1}))
	})

	t.Run("narrows to a typed map", func(t *testing.T) {
		out, ok := numbers.Parse(map[string]any{"a": 1})
		require.True(t, ok)
		assert.Equal(t, map[string]float64{"a": 1}, out)
	})
}

func TestTuple(t *testing.T) {
	pair := guard.Tuple(guard.String, guard.Number)

	t.Run("positions must match in order and count", func(t *testing.T) {
		assert.True(t, pair.Is([]any{"x", 1}))
		assert.False(t, pair.Is([]any{1, "x"}))
		assert.False(t, pair.Is([]any{"x"}))
		assert.False(t, pair.Is([]any{"x", 1, true}))
		assert.False(t, pair.Is("x1"))
	})

	t.Run("narrows to the raw elements", func(t *testing.T) {
		out, ok := pair.Parse([]any{"x", 1})
		require.True(t, ok)
		assert.Equal(t, []any{"x", 1}, out)
	})
}

func TestEnum(t *testing.T) {
	status := guard.Enum("active", "inactive", "banned")

	t.Run("matches listed literals only", func(t *testing.T) {
		assert.True(t, status.Is("active"))
		assert.True(t, status.Is("banned"))
		assert.False(t, status.Is("deleted"))
		assert.False(t, status.Is(1))
		assert.False(t, status.Is(nil))
	})

	t.Run("narrows to the literal type", func(t *testing.T) {
		out, ok := status.Parse("active")
		require.True(t, ok)
		assert.Equal(t, "active", out)
	})

	t.Run("numeric enums require exact dynamic type", func(t *testing.T) {
		level := guard.Enum(1, 2, 3)
		assert.True(t, level.Is(2))
		assert.False(t, level.Is(int64(2)))
		assert.False(t, level.Is(2.0))
	})
}
