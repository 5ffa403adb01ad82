// Package optional provides an explicit present/absent wrapper for values.
// It replaces nil-pointer and zero-value conventions with a type that
// states whether a value was supplied, which is what the guard package
// uses to validate optional value-type arguments.
package optional

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Value holds a value of type T that may or may not be present.
// The zero Value is absent; use Some to construct a present one.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a Value containing v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr converts a pointer into a Value: nil becomes None, anything
// else becomes Some of the pointed-to value. The value is copied, so the
// returned Value does not alias the pointer.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Get returns the contained value and whether it is present.
// This is the safe way to unwrap a Value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the contained value, panicking if it is absent.
// Only use this when presence has already been established.
func (o Value[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet called on None")
	}

	return o.value
}

// OrElse returns the contained value if present, or fallback otherwise.
func (o Value[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// OrElseFunc returns the contained value if present, or calls f for a
// fallback. Use this when computing the fallback is expensive.
func (o Value[T]) OrElseFunc(f func() T) T {
	if o.present {
		return o.value
	}

	return f()
}

// IsSome reports whether a value is present.
func (o Value[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Value is absent.
func (o Value[T]) IsNone() bool {
	return !o.present
}

// Ptr returns a pointer to a copy of the contained value, or nil if
// absent. The pointer never aliases the Value's internal storage.
func (o Value[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	v := o.value

	return &v
}

// All returns an iterator yielding the value if present and nothing
// otherwise, so a Value can be consumed with a range loop.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// String renders the Value as "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms a present value with f, propagating absence.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}

	return None[U]()
}

// MarshalJSON encodes a present Value as its bare value and an absent one
// as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and any other JSON value as Some.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}
