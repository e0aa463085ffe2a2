// Package codi provides checked (fallible) provider bindings for Go containers.
//
// The repository is built around one unit of work: taking a plain factory
// callable that may fail with a declared error type, and turning it into a
// correctly-validated, correctly-classifying provider registration inside a
// container.
//
// Two guarantees make that unit worth a library:
//
//   - Configuration-time contract validation: a factory that declares checked
//     failure types is validated once, during container assembly, against the
//     failure type its provider contract advertises. Mismatches become batched
//     diagnostics with actionable messages, never runtime surprises.
//   - Invocation-time triage: when the factory actually runs, failures are
//     unwrapped from the invocation envelope and re-classified as exactly one
//     of: declared failure (returned identity-preserved), unrelated failure
//     (propagated verbatim), or an internal impossibility (a fatal panic,
//     never a recoverable error).
//
// Wiring stays explicit and reflection-free on the call path: descriptors are
// constructed with direct closures, and failure classification is decided by
// tagged failure specs captured at construction time.
//
// See subpackages:
//   - di: binding keys, contracts, factory descriptors, triage, validation
//   - container: reference slot binder, scopes, and privacy-scoped modules
//   - cmd/codigen: code generator for factory wiring boilerplate
//   - examples/*: runnable wiring demos
package codi
