package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/guard"
)

func TestNil(t *testing.T) {
	t.Run("matches untyped and typed nil", func(t *testing.T) {
		assert.True(t, guard.Nil.Is(nil))
		assert.True(t, guard.Nil.Is((*int)(nil)))
		assert.True(t, guard.Nil.Is((map[string]any)(nil)))
		assert.True(t, guard.Nil.Is(([]int)(nil)))
		assert.True(t, guard.Nil.Is((func())(nil)))
		assert.True(t, guard.Nil.Is((chan int)(nil)))
	})

	t.Run("rejects zero values that are not nil", func(t *testing.T) {
		assert.False(t, guard.Nil.Is(0))
		assert.False(t, guard.Nil.Is(""))
		assert.False(t, guard.Nil.Is(false))
		assert.False(t, guard.Nil.Is([]int{}))
	})
}

func TestDefined(t *testing.T) {
	t.Run("complements Nil", func(t *testing.T) {
		inputs := []any{nil, (*int)(nil), 0, "", false, []int{}, struct{}{}}
		for _, v := range inputs {
			assert.Equal(t, !guard.Nil.Is(v), guard.Defined.Is(v), "input %#v", v)
		}
	})
}

func TestPrimitives(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		assert.True(t, guard.Bool.Is(true))
		assert.True(t, guard.Bool.Is(false))
		assert.False(t, guard.Bool.Is(1))
		assert.False(t, guard.Bool.Is("true"))
	})

	t.Run("string", func(t *testing.T) {
		assert.True(t, guard.String.Is("x"))
		assert.True(t, guard.String.Is(""))
		assert.False(t, guard.String.Is([]byte("x")))
		assert.False(t, guard.String.Is(nil))
	})

	t.Run("int accepts every signed kind", func(t *testing.T) {
		for _, v := range []any{42, int8(1), int16(2), int32(3), int64(4)} {
			assert.True(t, guard.Int.Is(v), "input %#v", v)
		}
		assert.False(t, guard.Int.Is(uint(1)))
		assert.False(t, guard.Int.Is(1.0))
		assert.False(t, guard.Int.Is("1"))
	})

	t.Run("int narrows to int64", func(t *testing.T) {
		out, ok := guard.Int.Parse(int8(-7))
		require.True(t, ok)
		assert.Equal(t, int64(-7), out)
	})

	t.Run("uint accepts every unsigned kind", func(t *testing.T) {
		for _, v := range []any{uint(1), uint8(2), uint16(3), uint32(4), uint64(5), uintptr(6)} {
			assert.True(t, guard.Uint.Is(v), "input %#v", v)
		}
		assert.False(t, guard.Uint.Is(-1))
		assert.False(t, guard.Uint.Is(1))
	})

	t.Run("float narrows both widths to float64", func(t *testing.T) {
		assert.True(t, guard.Float.Is(float32(1.5)))
		assert.True(t, guard.Float.Is(2.5))
		assert.False(t, guard.Float.Is(1))

		out, ok := guard.Float.Parse(2.5)
		require.True(t, ok)
		assert.Equal(t, 2.5, out)
	})

	t.Run("number spans every numeric kind", func(t *testing.T) {
		for _, v := range []any{42, int8(1), uint(2), uint64(3), float32(1.5), 2.5} {
			assert.True(t, guard.Number.Is(v), "input %#v", v)
		}
		assert.False(t, guard.Number.Is("42"))
		assert.False(t, guard.Number.Is(true))
		assert.False(t, guard.Number.Is(complex(1, 2)))
	})
}
