package container

import (
	"github.com/sghaida/codi/di"
)

// NotBoundError is returned when no checked provider is bound for a key.
type NotBoundError struct{ Key di.BindingKey }

// Error implements the error interface.
func (e NotBoundError) Error() string {
	// Example: container: no checked provider bound for *config.Config("primary")
	return "container: no checked provider bound for " + e.Key.String()
}

// WrongProviderTypeError is returned when a slot exists but its
// implementation does not satisfy the requested provider type.
type WrongProviderTypeError struct {
	Key di.BindingKey

	// GotType is the implementation's dynamic type, for diagnostics.
	GotType string
}

// Error implements the error interface.
func (e WrongProviderTypeError) Error() string {
	// Example: container: binding *store.UserStore has wrong provider type (*di.Factory[*config.Config])
	return "container: binding " + e.Key.String() + " has wrong provider type (" + e.GotType + ")"
}

// NotFinalizedError is returned when resolution is attempted before Finalize.
type NotFinalizedError struct{ Key di.BindingKey }

// Error implements the error interface.
func (e NotFinalizedError) Error() string {
	return "container: not finalized, cannot resolve " + e.Key.String()
}
