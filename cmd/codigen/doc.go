// Command codigen generates checked-factory wiring from a JSON spec.
//
// You write a *.factories.json describing the factory methods of a package:
// result type, optional qualifier, constructor, positional parameters,
// declared failure types with their kind, scope and exposure. codigen turns
// that into a Go file of di.MustFactory descriptors plus a single
// RegisterFactories entry point that configures all of them against a binder.
//
// There is no scanning or discovery: the spec is the source of truth, and
// the generated file is deterministic for a given spec.
//
// Spec format (*.factories.json)
//
// Minimal example:
//
//	{
//	  "package": "wiring",
//	  "imports": ["example.com/app/store", "example.com/app/config"],
//	  "factories": [
//	    {
//	      "name": "UserStore",
//	      "result": "*store.UserStore",
//	      "qualifier": "primary",
//	      "constructor": "store.NewUserStore",
//	      "params": [ { "type": "*config.Config" } ],
//	      "failures": [ { "type": "*store.StoreError", "kind": "checked" } ],
//	      "scope": "singleton",
//	      "exposed": true
//	    }
//	  ]
//	}
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run ../../cmd/codigen -spec ./wiring.factories.json -out ./wiring.gen.go
//
// Then:
//
//	go generate ./...
//
// Generated API (summary)
//
//   - new<Name>Factory(src container.SlotSource) di.Configurable, one per factory
//   - RegisterFactories(src container.SlotSource, binder di.SlotBinder)
//
// Constructors must have the shape func(params...) (Result, error). Declared
// failure kinds are "checked" or "unchecked"; kind and type feed straight
// into di.Checked / di.Unchecked, so contract validation at assembly time
// works the same for generated and hand-written descriptors.
package main
