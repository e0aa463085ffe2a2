package di

import (
	"reflect"
	"strconv"
)

// TypeOf returns the type tag for T. Unlike reflect.TypeOf on a value, it
// preserves interface types instead of collapsing to the dynamic type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// BindingKey identifies one slot in a container: a value type plus an
// optional qualifier for disambiguating multiple bindings of the same type.
//
// Keys are immutable and compared by value; exactly one registration may own
// a given key within one container scope (enforced by the container).
type BindingKey struct {
	Type      reflect.Type
	Qualifier string
}

// KeyOf builds a BindingKey for T, optionally qualified.
//
// Example:
//
//	di.KeyOf[*Config]()          // unqualified
//	di.KeyOf[*Config]("primary") // qualified
func KeyOf[T any](qualifier ...string) BindingKey {
	k := BindingKey{Type: TypeOf[T]()}
	if len(qualifier) > 0 {
		k.Qualifier = qualifier[0]
	}
	return k
}

// Qualified reports whether the key carries a qualifier.
func (k BindingKey) Qualified() bool { return k.Qualifier != "" }

// String renders the key for diagnostics.
//
// Example: *config.Config or *config.Config("primary")
func (k BindingKey) String() string {
	name := "<nil>"
	if k.Type != nil {
		name = k.Type.String()
	}
	if k.Qualifier == "" {
		return name
	}
	return name + "(" + strconv.Quote(k.Qualifier) + ")"
}
