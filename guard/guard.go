// Package guard provides precondition checks for public API entry
// points. Each guard validates a single condition and returns the value
// unchanged on success, so call sites can validate and assign in one
// step. Failures are classified by the sentinels in the errors package
// (nil argument, invalid argument, invalid state) and carry a message
// naming the offending parameter.
//
// Guards never mutate or retain their arguments and hold no shared
// state, so they are safe to call from any number of goroutines.
// Failures are meant to be treated as contract violations and propagated
// outward, not caught as control flow.
//
// Go has no way to capture the caller's source expression, so every
// guard accepts an optional trailing argName used in the failure
// message:
//
//	runner, err := guard.NotNil(cfg.Runner, "cfg.Runner")
package guard

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/veritest-labs/veritest-common/errors"
	"github.com/veritest-labs/veritest-common/optional"
	"github.com/veritest-labs/veritest-common/zero"
)

// name resolves the optional trailing argName parameter of a guard.
func name(argName []string) string {
	if len(argName) > 0 && argName[0] != "" {
		return argName[0]
	}

	return "value"
}

// EnumMember checks that value is one of valid and returns it unchanged.
// Fails with errors.ErrInvalidArgument if value is not in the set.
func EnumMember[T comparable](value T, valid []T, argName ...string) (T, error) {
	for _, candidate := range valid {
		if value == candidate {
			observe(checkEnumMember, nil)

			return value, nil
		}
	}

	err := fmt.Errorf("%w: %s must be one of %v, got %v",
		errors.ErrInvalidArgument, name(argName), valid, value)
	observe(checkEnumMember, err)

	return value, err
}

// NotNilValue unwraps an optional value-type argument.
// Fails with errors.ErrNilArgument if the optional is absent.
func NotNilValue[T any](value optional.Value[T], argName ...string) (T, error) {
	v, ok := value.Get()
	if !ok {
		err := fmt.Errorf("%w: %s must be provided", errors.ErrNilArgument, name(argName))
		observe(checkNotNilValue, err)

		return v, err
	}

	observe(checkNotNilValue, nil)

	return v, nil
}

// NotNil checks that a reference argument is non-nil and returns it.
// Fails with errors.ErrNilArgument otherwise.
func NotNil[T any](value *T, argName ...string) (*T, error) {
	if value == nil {
		err := fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name(argName))
		observe(checkNotNil, err)

		return nil, err
	}

	observe(checkNotNil, nil)

	return value, nil
}

// NotNilMsg is NotNil with a caller-supplied failure message.
func NotNilMsg[T any](msg string, value *T) (*T, error) {
	if value == nil {
		err := fmt.Errorf("%w: %s", errors.ErrNilArgument, msg)
		observe(checkNotNil, err)

		return nil, err
	}

	observe(checkNotNil, nil)

	return value, nil
}

// NotEmpty checks that a sequence argument is present and has at least
// one element, returning it unchanged (same backing array, same order).
// A nil slice fails with errors.ErrNilArgument; an empty one with
// errors.ErrInvalidArgument.
func NotEmpty[S ~[]E, E any](value S, argName ...string) (S, error) {
	var err error

	switch {
	case value == nil:
		err = fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name(argName))
	case len(value) == 0:
		err = fmt.Errorf("%w: %s must not be empty", errors.ErrInvalidArgument, name(argName))
	}

	observe(checkNotEmpty, err)

	return value, err
}

// NotEmptyMsg is NotEmpty with a caller-supplied failure message. Both
// the nil and the empty case fail with errors.ErrInvalidArgument.
func NotEmptyMsg[S ~[]E, E any](msg string, value S) (S, error) {
	if len(value) == 0 {
		err := fmt.Errorf("%w: %s", errors.ErrInvalidArgument, msg)
		observe(checkNotEmpty, err)

		return value, err
	}

	observe(checkNotEmpty, nil)

	return value, nil
}

// NotEmptySeq checks that an iterator yields at least one element and
// returns the iterator unchanged. Only the first element is probed; the
// sequence is not drained or copied, so the caller can still range over
// it in full. A nil iterator fails with errors.ErrNilArgument; one that
// yields nothing with errors.ErrInvalidArgument.
//
// The probe pulls one element, so seq must be re-rangeable (as slice and
// map iterators are) for the caller to see the full sequence afterward.
func NotEmptySeq[E any](seq iter.Seq[E], argName ...string) (iter.Seq[E], error) {
	if seq == nil {
		err := fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name(argName))
		observe(checkNotEmptySeq, err)

		return nil, err
	}

	for range seq {
		observe(checkNotEmptySeq, nil)

		return seq, nil
	}

	err := fmt.Errorf("%w: %s must yield at least one element",
		errors.ErrInvalidArgument, name(argName))
	observe(checkNotEmptySeq, err)

	return seq, err
}

// NotEmptyMap checks that a map argument is present and non-empty,
// returning it unchanged. A nil map fails with errors.ErrNilArgument; an
// empty one with errors.ErrInvalidArgument.
func NotEmptyMap[M ~map[K]V, K comparable, V any](value M, argName ...string) (M, error) {
	var err error

	switch {
	case value == nil:
		err = fmt.Errorf("%w: %s must not be nil", errors.ErrNilArgument, name(argName))
	case len(value) == 0:
		err = fmt.Errorf("%w: %s must not be empty", errors.ErrInvalidArgument, name(argName))
	}

	observe(checkNotEmptyMap, err)

	return value, err
}

// NotBlank checks that a string argument contains at least one
// non-whitespace character and returns it unchanged.
// Fails with errors.ErrInvalidArgument otherwise.
func NotBlank(value string, argName ...string) (string, error) {
	if strings.TrimSpace(value) == "" {
		err := fmt.Errorf("%w: %s must not be blank", errors.ErrInvalidArgument, name(argName))
		observe(checkNotBlank, err)

		return value, err
	}

	observe(checkNotBlank, nil)

	return value, nil
}

// Valid checks an arbitrary boolean precondition.
// Fails with errors.ErrInvalidArgument carrying msg if test is false.
func Valid(test bool, msg string) error {
	if !test {
		err := fmt.Errorf("%w: %s", errors.ErrInvalidArgument, msg)
		observe(checkValid, err)

		return err
	}

	observe(checkValid, nil)

	return nil
}

// FileExists checks that path names an existing file and returns the
// path unchanged. This is the only guard with a side effect: a read-only
// os.Stat probe. An empty or blank path, or a path that does not exist
// on disk, fails with errors.ErrInvalidArgument.
func FileExists(path string, argName ...string) (string, error) {
	if strings.TrimSpace(path) == "" {
		err := fmt.Errorf("%w: %s must not be empty", errors.ErrInvalidArgument, name(argName))
		observe(checkFileExists, err)

		return path, err
	}

	if _, statErr := os.Stat(path); statErr != nil {
		err := fmt.Errorf("%w: no file found at %q: %w",
			errors.ErrInvalidArgument, path, statErr)
		observe(checkFileExists, err)

		return path, err
	}

	observe(checkFileExists, nil)

	return path, nil
}

// NotZero checks that a value of an unconstrained generic type is not
// its type's zero value and returns it unchanged.
// Fails with errors.ErrNilArgument otherwise.
func NotZero[T any](value T, argName ...string) (T, error) {
	if zero.IsZero(value) {
		err := fmt.Errorf("%w: %s must not be the zero value", errors.ErrNilArgument, name(argName))
		observe(checkNotZero, err)

		return value, err
	}

	observe(checkNotZero, nil)

	return value, nil
}

// StateNotNil checks that an internal value is present, failing with
// errors.ErrInvalidState rather than an argument error: use it when an
// absent value means a broken invariant inside the framework, not a
// caller mistake. Absence means nil for reference kinds (pointers,
// slices, maps, channels, funcs, interfaces); value types always pass.
func StateNotNil[T any](value T, msg string) (T, error) {
	if isNilish(value) {
		err := fmt.Errorf("%w: %s", errors.ErrInvalidState, msg)
		observe(checkStateNotNil, err)

		return value, err
	}

	observe(checkStateNotNil, nil)

	return value, nil
}

// All aggregates the error results of several guards into one error,
// for entry points that validate multiple arguments before failing.
// Nil results are ignored; multiple failures are joined.
//
//	if err := guard.All(nameErr, pathErr, modeErr); err != nil {
//	    return err
//	}
func All(errs ...error) error {
	var coll errors.Collection

	coll.Add(errs...)

	return coll.Err()
}
