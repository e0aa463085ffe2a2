// Package container is the reference implementation of the binder boundary
// the di package registers against.
//
// It is intentionally small: one slot per binding key, a batched diagnostic
// log owned by the container, scope decoration layered outside the
// descriptors, and a privacy-scoped child container for exposed bindings. It
// exists to exercise every collaborator capability a checked factory needs
// (slot creation, scoping, exposure, diagnostics, parameter resolution), not
// to be a general-purpose DI framework: there is no multi-binding, no
// circular-dependency detection beyond duplicate keys, and no lifecycle
// management for created instances.
//
// Lifecycle:
//
//	c := container.New()
//	c.Install(factoryA, factoryB)
//	if err := c.Finalize(); err != nil {
//	    // batched configuration diagnostics
//	}
//	p, err := container.Provider[*Config](c, di.KeyOf[*Config]())
//	cfg, err := p.Get()
//
// Configuration (Install, Finalize) is single-threaded. After Finalize the
// container is read-only and Provider/Get may be called concurrently.
package container
