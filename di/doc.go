// Package di turns plain fallible factory callables into validated, typed
// checked-provider registrations.
//
// The unit of work is the Factory descriptor: one callable, its binding key,
// its positional parameter resolvers, and the failure types it declares. A
// descriptor is constructed once, validated once during container assembly,
// and invoked any number of times after the container is finalized.
//
// Design goals:
//   - Explicit wiring: callables are captured as closures at construction
//     time; the invocation path performs no reflection and no accessibility
//     tricks.
//   - Fail at assembly, not at resolution: declared failure types are checked
//     against the provider contract when the descriptor is registered, and
//     incompatibilities become batched diagnostics instead of runtime
//     surprises.
//   - Verbatim failures: declared and unrelated failures alike leave Get
//     identity-preserved. The library never wraps, re-types, or swallows a
//     failure on the invocation path.
//   - Loud impossibilities: a callable the registration step guaranteed
//     reachable turning out unreachable is a programming bug and panics with
//     an AssertionError rather than surfacing as a recoverable error.
//
// Wiring happens through the SlotBinder boundary: containers implement
// SlotBinder (and optionally PrivateBinder for exposure across privacy
// scopes), descriptors implement Configurable. The container subpackage ships
// a reference implementation.
package di
