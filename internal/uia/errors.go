package uia

import (
	"errors"
	"fmt"
	"time"
)

// Walker edge sentinels.
var (
	ErrNoChild   = errors.New("element has no children")
	ErrNoSibling = errors.New("element has no next sibling")
)

// NotFoundError is returned when a locate exceeded its timeout without a match.
// It carries the attempted predicates so a failure can be diagnosed without
// re-running the automation.
type NotFoundError struct {
	Query   string
	Timeout time.Duration
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element matching %s found within %s", e.Query, e.Timeout)
}

// FieldIndexError is returned when an ordinal field reference points beyond
// the controls of that class actually present under the scope.
type FieldIndexError struct {
	Class string
	Index int
	Have  int
}

func (e *FieldIndexError) Error() string {
	return fmt.Sprintf("field index %d out of range: only %d %q controls present", e.Index, e.Have, e.Class)
}

// InjectionError is returned when a keystroke dispatch is rejected, typically
// because the target element handle went stale when the host redrew. It is not
// retryable without re-locating the target first.
type InjectionError struct {
	Keys  string
	Cause error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("keystroke injection of %q failed: %v", e.Keys, e.Cause)
}

func (e *InjectionError) Unwrap() error { return e.Cause }
