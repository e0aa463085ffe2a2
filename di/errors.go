package di

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFactory is returned when a descriptor is constructed without a
	// callable (nil function and no custom invoker).
	ErrNilFactory = errors.New("di: nil factory callable")

	// ErrNilResolver is returned when a descriptor is constructed with a nil
	// parameter resolver.
	ErrNilResolver = errors.New("di: nil parameter resolver")
)

// CallError is the envelope the invocation machinery wraps failures in.
// Triage unwraps it and re-classifies the underlying failure; it never
// escapes Get.
//
// Exactly one of the fields is meaningful per failure: Cause for an error the
// callable returned (or the machinery hit on the way), PanicValue for a panic
// recovered from the callable, Unreachable for an access failure the
// registration step should have made impossible.
type CallError struct {
	Cause       error
	PanicValue  any
	Unreachable bool
}

// Error implements the error interface.
func (e *CallError) Error() string {
	switch {
	case e.Unreachable:
		return "di: factory callable is unreachable"
	case e.PanicValue != nil:
		return fmt.Sprintf("di: factory panicked: %v", e.PanicValue)
	case e.Cause != nil:
		return "di: factory invocation failed: " + e.Cause.Error()
	default:
		return "di: factory invocation failed"
	}
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *CallError) Unwrap() error { return e.Cause }

// AssertionError signals an invariant the registration step was supposed to
// guarantee. It is delivered via panic, never returned: callers must not
// treat it as a provider failure, and no retry can help.
type AssertionError struct {
	// Factory is the diagnostic identity of the descriptor that hit the bug.
	Factory string

	// Cause is the machinery failure, when one exists.
	Cause error
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	msg := "di: assertion failed: " + e.Factory + " became unreachable after registration"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *AssertionError) Unwrap() error { return e.Cause }
