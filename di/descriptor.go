package di

import (
	"errors"
	"runtime"
	"strconv"
)

// Factory is the immutable record of one factory callable plus its binding
// metadata: the unit this package registers and invokes.
//
// A Factory holds no mutable state after construction, so concurrent Get
// calls are independent and need no locking. Memoization, if any, belongs to
// a scope decorator wrapping the provider, not to the descriptor.
type Factory[T any] struct {
	key       BindingKey
	invoker   Invoker
	resolvers []Resolver
	deps      []BindingKey
	scope     Scope
	exposed   bool
	contract  Contract
	failures  []FailureSpec
	source    string
}

// factorySettings collects option state during construction.
type factorySettings struct {
	resolvers []Resolver
	deps      []BindingKey
	scope     Scope
	exposed   bool
	contract  Contract
	failures  []FailureSpec
	invoker   Invoker
}

// FactoryOption configures a Factory during construction.
type FactoryOption func(*factorySettings)

// WithResolvers sets the ordered parameter resolvers, one per factory
// parameter, matched positionally.
func WithResolvers(resolvers ...Resolver) FactoryOption {
	return func(s *factorySettings) { s.resolvers = resolvers }
}

// WithDependencies records the declared dependency keys. The set is used only
// for introspection and diagnostics by external consumers; resolution order
// is strictly the resolver list order.
func WithDependencies(keys ...BindingKey) FactoryOption {
	return func(s *factorySettings) { s.deps = keys }
}

// WithScope sets the scope annotation. Absent means container default scope.
func WithScope(scope Scope) FactoryOption {
	return func(s *factorySettings) { s.scope = scope }
}

// Exposed marks the binding for exposure to the parent of a privacy-scoped
// container.
func Exposed() FactoryOption {
	return func(s *factorySettings) { s.exposed = true }
}

// WithContract sets the checked-provider contract the factory binds against.
func WithContract(c Contract) FactoryOption {
	return func(s *factorySettings) { s.contract = c }
}

// WithFailures declares the ordered failure types the callable may produce.
func WithFailures(specs ...FailureSpec) FactoryOption {
	return func(s *factorySettings) { s.failures = specs }
}

// WithInvoker replaces the default closure-backed invoker. Intended for
// containers that route dispatch through their own machinery; the factory
// callable passed to NewFactory may then be nil.
func WithInvoker(iv Invoker) FactoryOption {
	return func(s *factorySettings) { s.invoker = iv }
}

// NewFactory builds a descriptor for one factory callable.
//
// fn receives the resolved arguments in resolver order. It may be nil only
// when WithInvoker supplies custom dispatch.
func NewFactory[T any](key BindingKey, fn func(args []any) (T, error), opts ...FactoryOption) (*Factory[T], error) {
	return newFactory(key, fn, 3, opts)
}

// MustFactory is NewFactory with a panic on construction error. Useful in
// composition roots and generated wiring where a bad descriptor is fatal.
func MustFactory[T any](key BindingKey, fn func(args []any) (T, error), opts ...FactoryOption) *Factory[T] {
	f, err := newFactory(key, fn, 3, opts)
	if err != nil {
		panic(err)
	}
	return f
}

func newFactory[T any](key BindingKey, fn func(args []any) (T, error), callerSkip int, opts []FactoryOption) (*Factory[T], error) {
	var s factorySettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if s.invoker == nil {
		if fn == nil {
			return nil, ErrNilFactory
		}
		s.invoker = funcInvoker[T]{fn: fn}
	}
	for _, r := range s.resolvers {
		if r == nil {
			return nil, ErrNilResolver
		}
	}

	f := &Factory[T]{
		key:       key,
		invoker:   s.invoker,
		resolvers: append([]Resolver(nil), s.resolvers...),
		deps:      append([]BindingKey(nil), s.deps...),
		scope:     s.scope,
		exposed:   s.exposed,
		contract:  s.contract,
		failures:  append([]FailureSpec(nil), s.failures...),
		source:    callerSource(callerSkip),
	}
	return f, nil
}

// callerSource captures the construction site for diagnostic identity.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return file + ":" + strconv.Itoa(line)
}

// Key returns the target binding key.
func (f *Factory[T]) Key() BindingKey { return f.key }

// Dependencies returns a copy of the declared dependency keys for external
// dependency-graph introspection.
func (f *Factory[T]) Dependencies() []BindingKey {
	return append([]BindingKey(nil), f.deps...)
}

// Contract returns the checked-provider contract the factory binds against.
func (f *Factory[T]) Contract() Contract { return f.contract }

// Scope returns the scope annotation, ScopeDefault when absent.
func (f *Factory[T]) Scope() Scope { return f.scope }

// IsExposed reports whether the binding requests exposure to the parent of a
// privacy-scoped container.
func (f *Factory[T]) IsExposed() bool { return f.exposed }

// Failures returns a copy of the declared failure specs in declaration order.
func (f *Factory[T]) Failures() []FailureSpec {
	return append([]FailureSpec(nil), f.failures...)
}

// String returns the diagnostic identity: binding key plus originating source
// location.
func (f *Factory[T]) String() string {
	return "checked factory " + f.key.String() + " at " + f.source
}

// Get resolves the factory parameters in declared order, invokes the callable
// and triages the outcome.
//
// Success returns the produced value as-is. A declared failure comes back
// identity-preserved through the error return; so does an unrelated failure.
// A panic inside the callable is re-raised verbatim. An access failure the
// registration step should have made impossible panics with *AssertionError.
func (f *Factory[T]) Get() (T, error) {
	var zero T

	args, err := resolveAll(f.resolvers)
	if err != nil {
		// resolver failures propagate unmodified
		return zero, err
	}

	out, err := f.invoker.Call(args)
	if err != nil {
		return zero, f.triage(err)
	}

	// The static descriptor guarantees compatibility of the produced value;
	// no further runtime validation here.
	v, _ := out.(T)
	return v, nil
}

// triage unwraps the invocation envelope and re-classifies the failure.
// Access failures are checked first and are always fatal.
func (f *Factory[T]) triage(err error) error {
	var call *CallError
	if !errors.As(err, &call) {
		// the machinery surfaced a bare failure; nothing to unwrap
		return err
	}
	if call.Unreachable {
		panic(&AssertionError{Factory: f.String(), Cause: call.Cause})
	}
	if call.PanicValue != nil {
		// re-raise the recovered panic verbatim
		panic(call.PanicValue)
	}
	if call.Cause == nil {
		// an empty envelope carries no cause to classify
		return call
	}
	return call.Cause
}

// Classify reports how a failure returned by Get relates to the declared
// failure specs: FailureDeclared when err matches a checked spec and no
// unchecked spec claims it first, FailureUnchecked otherwise. Unrelated
// failures (matching nothing) are unchecked.
func (f *Factory[T]) Classify(err error) FailureKind {
	for _, spec := range f.failures {
		if spec.Kind() == FailureUnchecked && spec.Matches(err) {
			return FailureUnchecked
		}
	}
	for _, spec := range f.failures {
		if spec.Kind() == FailureDeclared && spec.Matches(err) {
			return FailureDeclared
		}
	}
	return FailureUnchecked
}
