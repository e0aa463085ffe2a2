package di

// Configure registers the descriptor with a container binder. It runs once
// per descriptor during container assembly, never at call time.
//
// The steps, in order: bind the checked-provider slot for the factory's key
// and contract, install the descriptor as its implementation, apply the scope
// annotation, request exposure when marked (a diagnostic when the binder is
// not privacy-scoped), and validate every declared checked failure type
// against the failure type the slot's contract advertises.
//
// Validation failures become batched diagnostics, never errors: registration
// must be able to report multiple unrelated misconfigurations in one pass.
func (f *Factory[T]) Configure(binder SlotBinder) {
	handle := binder.BindCheckedProvider(f.key, f.contract)
	if handle == nil {
		binder.AddDiagnostic("%s: binder returned no slot for %s", f, f.key)
		return
	}

	handle.ToImplementation(f)
	if f.scope != ScopeDefault {
		handle.InScope(f.scope)
	}

	if f.exposed {
		if pb, ok := binder.(PrivateBinder); ok {
			pb.Expose(f.key)
		} else {
			binder.AddDiagnostic("%s: exposed binding requires a privacy-scoped binder", f)
		}
	}

	declared := handle.DeclaredFailureType()
	for _, spec := range f.failures {
		// unchecked types carry no declaration-level contract
		if spec.Kind() == FailureUnchecked {
			continue
		}
		// a fully generic contract accepts every checked type
		if declared == nil {
			continue
		}
		if !spec.Type().AssignableTo(declared) {
			binder.AddDiagnostic(
				"%s is not compatible with the failure type (%s) declared by the checked provider contract (%s) on %s",
				spec.Type(), declared, f.contract, f,
			)
		}
	}
}
