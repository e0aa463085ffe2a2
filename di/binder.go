package di

import "reflect"

// Scope names a caching policy for a binding. The empty scope means the
// container default (a fresh invocation per resolution).
type Scope string

const (
	// ScopeDefault defers to the container's default behavior.
	ScopeDefault Scope = ""

	// ScopeSingleton memoizes the first resolution, value and error alike.
	ScopeSingleton Scope = "singleton"
)

// SlotHandle is the container's handle for one checked-provider slot,
// obtained from SlotBinder.BindCheckedProvider.
type SlotHandle interface {
	// ToImplementation installs the descriptor as the slot's backing
	// implementation. impl must satisfy CheckedProvider for the slot's
	// success type.
	ToImplementation(impl any)

	// InScope applies a scope annotation to the slot.
	InScope(scope Scope)

	// DeclaredFailureType returns the failure type the slot's contract
	// advertises, or nil when the contract is fully generic.
	DeclaredFailureType() reflect.Type
}

// SlotBinder is the capability a container offers during assembly: slot
// creation plus the append-only diagnostic log. Diagnostics are batched and
// surfaced to the operator at the end of configuration, so several unrelated
// misconfigurations can be reported together.
type SlotBinder interface {
	BindCheckedProvider(key BindingKey, contract Contract) SlotHandle
	AddDiagnostic(format string, args ...any)
}

// PrivateBinder is the optional capability of privacy-scoped containers:
// exposing a locally-bound key to the parent scope. Configure upgrades to it
// via type assertion; requesting exposure from a binder without this
// capability is reported as a diagnostic, never a crash.
type PrivateBinder interface {
	SlotBinder
	Expose(key BindingKey)
}

// Configurable is anything a container can install during assembly.
type Configurable interface {
	Configure(binder SlotBinder)
}
