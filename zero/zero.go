// Package zero provides helpers for obtaining and detecting the zero value
// of a generic type parameter.
package zero

import "reflect"

// Value returns the zero value for type T.
//
// Example:
//
//	zero.Value[int]()     // 0
//	zero.Value[string]()  // ""
//	zero.Value[*Config]() // nil
func Value[T any]() T {
	var v T

	return v
}

// IsZero reports whether value equals the zero value for type T.
// Comparison is deep, so struct, slice, and map types are handled
// correctly even when T is not comparable.
//
// Example:
//
//	zero.IsZero(0)          // true
//	zero.IsZero("veritest") // false
//	zero.IsZero(Config{})   // true
func IsZero[T any](value T) bool {
	var v T

	return reflect.DeepEqual(value, v)
}
