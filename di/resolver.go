package di

// Resolver produces one factory argument at call time. Resolvers are matched
// to factory parameters positionally and may have side effects registered
// elsewhere (scope instantiation, counters), so resolution never skips them.
type Resolver interface {
	Resolve() (any, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func() (any, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve() (any, error) { return f() }

// ValueOf returns a Resolver that always yields v.
func ValueOf(v any) Resolver {
	return ResolverFunc(func() (any, error) { return v, nil })
}

// resolveAll invokes every resolver in declared order and returns the full
// argument list. A resolver failure propagates unmodified; this layer adds no
// wrapping. No caching happens here: scope-level caching is an external
// concern layered above the whole provider.
func resolveAll(resolvers []Resolver) ([]any, error) {
	if len(resolvers) == 0 {
		return nil, nil
	}
	args := make([]any, len(resolvers))
	for i, r := range resolvers {
		v, err := r.Resolve()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
