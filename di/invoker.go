package di

// Invoker abstracts the dispatch step that reaches the factory callable.
//
// The default invoker is a direct closure call. Custom invokers exist so
// containers can route dispatch through their own machinery; every failure an
// Invoker reports should arrive wrapped in *CallError so triage can unwrap
// and classify it.
type Invoker interface {
	Call(args []any) (any, error)
}

// funcInvoker is the default closure-backed invoker. It converts the three
// ways a call can go wrong into the CallError envelope: a returned error, a
// panic in the callable, and the nil-callable case that registration should
// have made impossible.
type funcInvoker[T any] struct {
	fn func(args []any) (T, error)
}

func (iv funcInvoker[T]) Call(args []any) (out any, err error) {
	if iv.fn == nil {
		return nil, &CallError{Unreachable: true}
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = &CallError{PanicValue: rec}
		}
	}()
	v, ferr := iv.fn(args)
	if ferr != nil {
		return nil, &CallError{Cause: ferr}
	}
	return v, nil
}
