package container

import (
	"sort"

	"github.com/sghaida/codi/di"
)

// PrivateContainer is a privacy-scoped child container. Bindings stay local
// unless explicitly exposed; exposed slots are promoted into the parent when
// the child finalizes. Resolution inside the child falls back to the parent
// for keys the child does not bind itself.
type PrivateContainer struct {
	Container
	parent  *Container
	exposed map[di.BindingKey]bool
}

// NewPrivate creates a privacy-scoped child of this container.
func (c *Container) NewPrivate() *PrivateContainer {
	return &PrivateContainer{
		Container: Container{slots: make(map[di.BindingKey]*slot)},
		parent:    c,
		exposed:   make(map[di.BindingKey]bool),
	}
}

// Expose implements di.PrivateBinder: it marks a locally-bound key for
// promotion into the parent scope at finalize time.
func (p *PrivateContainer) Expose(key di.BindingKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finalized {
		p.diags.Addf("container: exposing %s after finalize is ignored", key)
		return
	}
	p.exposed[key] = true
}

// Install configures each item against the child itself, so Configure sees
// the di.PrivateBinder capability and exposure requests succeed.
func (p *PrivateContainer) Install(items ...di.Configurable) {
	for _, item := range items {
		if item == nil {
			p.AddDiagnostic("container: cannot install nil configurable")
			continue
		}
		item.Configure(p)
	}
}

// Finalize ends the child's configuration phase, promotes exposed slots into
// the parent, and returns the child's batched diagnostics.
func (p *PrivateContainer) Finalize() error {
	p.mu.Lock()
	p.finalized = true

	keys := make([]di.BindingKey, 0, len(p.exposed))
	for key := range p.exposed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	promote := make([]*slot, 0, len(keys))
	for _, key := range keys {
		s, ok := p.slots[key]
		if !ok {
			p.diags.Addf("container: exposed key %s is not bound in the private container", key)
			continue
		}
		promote = append(promote, s)
	}
	p.mu.Unlock()

	for _, s := range promote {
		if !p.parent.adopt(s) {
			p.AddDiagnostic("container: exposed binding %s conflicts with an existing parent binding", s.key)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.diags.Err()
}

// lookup resolves locally first, then falls back to the parent.
func (p *PrivateContainer) lookup(key di.BindingKey) (*slot, bool) {
	p.mu.RLock()
	s, ok := p.slots[key]
	finalized := p.finalized
	p.mu.RUnlock()
	if ok {
		return s, finalized
	}
	return p.parent.lookup(key)
}
