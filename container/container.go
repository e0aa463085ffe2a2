package container

import (
	"reflect"
	"sort"
	"sync"

	"github.com/sghaida/codi/di"
)

// slot holds one checked-provider registration plus its singleton memo.
type slot struct {
	key      di.BindingKey
	contract di.Contract
	impl     any
	scope    di.Scope

	memoMu   sync.Mutex
	memoDone bool
	val      any
	err      error
}

// slotHandle is the di.SlotHandle the container hands to Configure.
type slotHandle struct{ s *slot }

func (h slotHandle) ToImplementation(impl any) { h.s.impl = impl }

func (h slotHandle) InScope(scope di.Scope) { h.s.scope = scope }

func (h slotHandle) DeclaredFailureType() reflect.Type { return h.s.contract.Failure }

// SlotSource is anything Provider can resolve from: the plain container or a
// privacy-scoped child falling back to its parent.
type SlotSource interface {
	lookup(key di.BindingKey) (*slot, bool)
}

// Container is the reference slot binder: a flat map of checked-provider
// slots plus the container-owned diagnostic log.
//
// Configuration (BindCheckedProvider, Install, Finalize) is a single-threaded
// phase. After Finalize the slot map is read-only and resolution may run
// concurrently; the mutex only guards against misuse across that boundary.
type Container struct {
	mu        sync.RWMutex
	slots     map[di.BindingKey]*slot
	diags     di.DiagnosticLog
	finalized bool
}

// New creates an empty container.
func New() *Container {
	return &Container{slots: make(map[di.BindingKey]*slot)}
}

// BindCheckedProvider implements di.SlotBinder. A duplicate key or a bind
// after Finalize yields a diagnostic and a detached slot, so the offending
// Configure can complete without crashing the assembly pass.
func (c *Container) BindCheckedProvider(key di.BindingKey, contract di.Contract) di.SlotHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &slot{key: key, contract: contract}
	if c.finalized {
		c.diags.Addf("container: binding %s after finalize is ignored", key)
		return slotHandle{s: s}
	}
	if _, exists := c.slots[key]; exists {
		c.diags.Addf("container: duplicate checked provider binding for %s", key)
		return slotHandle{s: s}
	}
	c.slots[key] = s
	return slotHandle{s: s}
}

// AddDiagnostic implements di.SlotBinder.
func (c *Container) AddDiagnostic(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags.Addf(format, args...)
}

// Install configures each item against this container in order.
func (c *Container) Install(items ...di.Configurable) {
	for _, item := range items {
		if item == nil {
			c.AddDiagnostic("container: cannot install nil configurable")
			continue
		}
		item.Configure(c)
	}
}

// Finalize ends the configuration phase. It returns the batched diagnostics
// as a single error, or nil when the configuration is clean. The container is
// read-only afterwards.
func (c *Container) Finalize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finalized = true
	return c.diags.Err()
}

// Finalized reports whether Finalize has been called.
func (c *Container) Finalized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.finalized
}

// Diagnostics returns a copy of the accumulated configuration diagnostics.
func (c *Container) Diagnostics() []di.Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.diags.Entries()
}

// Bound reports whether a slot exists for key.
func (c *Container) Bound(key di.BindingKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.slots[key]
	return ok
}

// Keys returns all bound keys sorted by their diagnostic rendering.
func (c *Container) Keys() []di.BindingKey {
	c.mu.RLock()
	keys := make([]di.BindingKey, 0, len(c.slots))
	for k := range c.slots {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// lookup returns the slot for key. The second result reports whether the
// container is finalized; resolution refuses unfinished containers.
func (c *Container) lookup(key di.BindingKey) (*slot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots[key], c.finalized
}

// adopt promotes an exposed child slot into this container. It reports
// whether the promotion happened; a false return means the key conflicts
// with an existing parent binding.
func (c *Container) adopt(s *slot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.slots[s.key]; exists {
		return false
	}
	c.slots[s.key] = s
	return true
}

// Provider returns the typed checked provider bound at key, wrapped by its
// scope decorator. The source must be finalized first.
func Provider[T any](src SlotSource, key di.BindingKey) (di.CheckedProvider[T], error) {
	s, finalized := src.lookup(key)
	if s == nil {
		return nil, NotBoundError{Key: key}
	}
	if !finalized {
		return nil, NotFinalizedError{Key: key}
	}
	p, ok := s.impl.(di.CheckedProvider[T])
	if !ok {
		got := "<nil>"
		if s.impl != nil {
			got = reflect.TypeOf(s.impl).String()
		}
		return nil, WrongProviderTypeError{Key: key, GotType: got}
	}
	if s.scope == di.ScopeSingleton {
		return &singletonProvider[T]{s: s, inner: p}, nil
	}
	return p, nil
}

// ResolverFor bridges a bound slot into a positional parameter resolver for
// another factory. Resolution happens at call time against the finished
// container.
func ResolverFor[T any](src SlotSource, key di.BindingKey) di.Resolver {
	return di.ResolverFunc(func() (any, error) {
		p, err := Provider[T](src, key)
		if err != nil {
			return nil, err
		}
		v, err := p.Get()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// singletonProvider memoizes the first resolution, value and error alike. It
// is the external scope decorator layered above the descriptor: the
// descriptor itself stays memo-free. A panic escaping the inner provider
// leaves the memo unset.
type singletonProvider[T any] struct {
	s     *slot
	inner di.CheckedProvider[T]
}

// Get implements di.CheckedProvider.
func (p *singletonProvider[T]) Get() (T, error) {
	s := p.s
	s.memoMu.Lock()
	defer s.memoMu.Unlock()
	if !s.memoDone {
		v, err := p.inner.Get()
		s.val, s.err = v, err
		s.memoDone = true
	}
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	v, _ := s.val.(T)
	return v, nil
}
