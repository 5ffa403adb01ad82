// Package errors defines the failure kinds shared by the guard utilities
// and a small accumulator for collecting several failures into one error.
package errors

import "errors"

// The three failure kinds raised by the guard package. Callers classify
// failures with errors.Is rather than by message text.
var (
	// ErrNilArgument indicates a required value was absent.
	ErrNilArgument = errors.New("nil argument")

	// ErrInvalidArgument indicates a value was present but violated a
	// structural constraint (wrong enum member, empty sequence, failed
	// predicate, missing file).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates an absent value that reflects a broken
	// internal invariant rather than a caller mistake.
	ErrInvalidState = errors.New("invalid state")
)

// Collection accumulates errors from multiple checks so they can be
// reported together. It is not safe for concurrent use; each call site
// should own its own Collection. Nil errors are ignored on Add, so guard
// results can be fed in unconditionally.
type Collection struct {
	errs []error
}

// Add appends the given errors to the collection, skipping nil values.
func (c *Collection) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			c.errs = append(c.errs, err)
		}
	}
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errs)
}

// HasError returns true if at least one error has been collected.
func (c *Collection) HasError() bool {
	return len(c.errs) > 0
}

// Err returns the collected errors as a single error: nil if the
// collection is empty, the error itself if there is exactly one, or an
// errors.Join of all of them otherwise.
func (c *Collection) Err() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return errors.Join(c.errs...)
	}
}

// Clear resets the collection to its empty state.
func (c *Collection) Clear() {
	c.errs = nil
}
