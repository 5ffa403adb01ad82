package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritest-labs/veritest-common/optional"
)

func TestSome(t *testing.T) {
	t.Parallel()

	v := optional.Some(42)

	assert.True(t, v.IsSome())
	assert.False(t, v.IsNone())

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestNone(t *testing.T) {
	t.Parallel()

	v := optional.None[string]()

	assert.True(t, v.IsNone())
	assert.False(t, v.IsSome())

	got, ok := v.Get()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var v optional.Value[int]

	assert.True(t, v.IsNone())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer becomes None", func(t *testing.T) {
		t.Parallel()

		assert.True(t, optional.FromPtr[int](nil).IsNone())
	})

	t.Run("non-nil pointer becomes Some", func(t *testing.T) {
		t.Parallel()

		n := 7
		v := optional.FromPtr(&n)

		require.True(t, v.IsSome())
		assert.Equal(t, 7, v.MustGet())
	})

	t.Run("value is copied, not aliased", func(t *testing.T) {
		t.Parallel()

		n := 7
		v := optional.FromPtr(&n)
		n = 8

		assert.Equal(t, 7, v.MustGet())
	})
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	t.Run("returns value when present", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", optional.Some("x").MustGet())
	})

	t.Run("panics when absent", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			optional.None[string]().MustGet()
		})
	})
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, optional.Some(1).OrElse(9))
	assert.Equal(t, 9, optional.None[int]().OrElse(9))
}

func TestOrElseFunc(t *testing.T) {
	t.Parallel()

	t.Run("present value skips fallback", func(t *testing.T) {
		t.Parallel()

		called := false
		got := optional.Some(1).OrElseFunc(func() int {
			called = true

			return 9
		})

		assert.Equal(t, 1, got)
		assert.False(t, called)
	})

	t.Run("absent value calls fallback", func(t *testing.T) {
		t.Parallel()

		got := optional.None[int]().OrElseFunc(func() int { return 9 })

		assert.Equal(t, 9, got)
	})
}

func TestPtr(t *testing.T) {
	t.Parallel()

	t.Run("absent returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, optional.None[int]().Ptr())
	})

	t.Run("present returns pointer to copy", func(t *testing.T) {
		t.Parallel()

		v := optional.Some(5)
		p := v.Ptr()

		require.NotNil(t, p)
		assert.Equal(t, 5, *p)

		// Mutating through the pointer must not affect the Value.
		*p = 6
		assert.Equal(t, 5, v.MustGet())
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("present yields one element", func(t *testing.T) {
		t.Parallel()

		var seen []int
		for v := range optional.Some(3).All() {
			seen = append(seen, v)
		}

		assert.Equal(t, []int{3}, seen)
	})

	t.Run("absent yields nothing", func(t *testing.T) {
		t.Parallel()

		count := 0
		for range optional.None[int]().All() {
			count++
		}

		assert.Equal(t, 0, count)
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", optional.Some(42).String())
	assert.Equal(t, "None", optional.None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := optional.Map(optional.Some(21), func(n int) int { return n * 2 })
	assert.Equal(t, 42, doubled.MustGet())

	absent := optional.Map(optional.None[int](), func(n int) int { return n * 2 })
	assert.True(t, absent.IsNone())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("Some marshals as bare value", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(optional.Some("hello"))
		require.NoError(t, err)
		assert.JSONEq(t, `"hello"`, string(data))
	})

	t.Run("None marshals as null", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(optional.None[string]())
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("null unmarshals as None", func(t *testing.T) {
		t.Parallel()

		var v optional.Value[int]
		require.NoError(t, json.Unmarshal([]byte("null"), &v))
		assert.True(t, v.IsNone())
	})

	t.Run("value unmarshals as Some", func(t *testing.T) {
		t.Parallel()

		var v optional.Value[int]
		require.NoError(t, json.Unmarshal([]byte("42"), &v))
		assert.Equal(t, 42, v.MustGet())
	})

	t.Run("round trip inside a struct", func(t *testing.T) {
		t.Parallel()

		type payload struct {
			Limit optional.Value[int] `json:"limit"`
		}

		data, err := json.Marshal(payload{Limit: optional.Some(10)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"limit":10}`, string(data))

		var decoded payload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, 10, decoded.Limit.MustGet())
	})
}
