package di

import "reflect"

// CheckedProvider is the fallible provider abstraction descriptors bind
// against: a provider of T whose error return carries the declared failures.
type CheckedProvider[T any] interface {
	Get() (T, error)
}

// CheckedProviderFunc adapts a plain function to CheckedProvider.
type CheckedProviderFunc[T any] func() (T, error)

// Get implements CheckedProvider.
func (f CheckedProviderFunc[T]) Get() (T, error) { return f() }

// Contract identifies the checked-provider abstraction a factory is
// registered under.
//
// Interface names the provider abstraction in diagnostics. Failure is the
// failure type the abstraction advertises; nil means the contract is fully
// generic over failures, in which case every declared checked type passes
// validation unconditionally.
type Contract struct {
	Interface reflect.Type
	Failure   reflect.Type
}

// ContractOf builds a Contract for the provider abstraction P with no
// declared failure type.
//
// Example:
//
//	di.ContractOf[di.CheckedProvider[*Config]]()
func ContractOf[P any]() Contract {
	return Contract{Interface: TypeOf[P]()}
}

// WithDeclaredFailure returns a copy of the contract advertising t as its
// failure type. Use ErrType to obtain the tag.
func (c Contract) WithDeclaredFailure(t reflect.Type) Contract {
	c.Failure = t
	return c
}

// ErrType returns the type tag for a failure type E.
func ErrType[E error]() reflect.Type { return TypeOf[E]() }

// String renders the contract's interface for diagnostics.
func (c Contract) String() string {
	if c.Interface == nil {
		return "di.CheckedProvider"
	}
	return c.Interface.String()
}
