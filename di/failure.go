package di

import (
	"errors"
	"reflect"
)

// FailureKind tags how a failure relates to a factory's declared contract.
type FailureKind int

const (
	// FailureDeclared marks a checked failure: part of the provider's
	// contract, validated against the contract's declared failure type at
	// registration time.
	FailureDeclared FailureKind = iota + 1

	// FailureUnchecked marks a failure exempt from contract validation.
	// Unchecked failures always propagate verbatim.
	FailureUnchecked
)

// String returns the kind's name for diagnostics.
func (k FailureKind) String() string {
	switch k {
	case FailureDeclared:
		return "declared"
	case FailureUnchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}

// FailureSpec declares one failure type a factory may produce, tagged as
// checked or unchecked. The kind is decided explicitly here, at declaration
// time, not derived from any type hierarchy at call time.
//
// The match function is captured at construction so classification pays no
// reflection cost per call.
type FailureSpec struct {
	typ   reflect.Type
	kind  FailureKind
	match func(error) bool
}

// Checked declares E as a checked failure type. Registration validates E
// against the contract's declared failure type.
func Checked[E error]() FailureSpec {
	return FailureSpec{
		typ:  TypeOf[E](),
		kind: FailureDeclared,
		match: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
	}
}

// Unchecked declares E as an unchecked failure type. Unchecked types carry no
// declaration-level contract and are skipped by registration validation.
func Unchecked[E error]() FailureSpec {
	return FailureSpec{
		typ:  TypeOf[E](),
		kind: FailureUnchecked,
		match: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
	}
}

// Type returns the declared failure type tag.
func (s FailureSpec) Type() reflect.Type { return s.typ }

// Kind returns the declared kind.
func (s FailureSpec) Kind() FailureKind { return s.kind }

// Matches reports whether err is an instance of the declared type, unwrapping
// in the errors.As sense.
func (s FailureSpec) Matches(err error) bool {
	if err == nil || s.match == nil {
		return false
	}
	return s.match(err)
}
