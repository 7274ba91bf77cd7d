package scope

import "reflect"

var typError = reflect.TypeOf((*error)(nil)).Elem()

// factory is a validated zero-argument constructor for a bound value.
type factory struct {
	fn     reflect.Value
	hasErr bool
}

// newFactory validates fn and wraps it for invocation. fn must be a
// function callable with no arguments that returns a value, or a value
// and an error.
func newFactory(fn any) (*factory, error) {
	if fn == nil {
		return nil, &FactoryNotCallableError{Factory: fn, Reason: "factory is nil"}
	}

	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return nil, &FactoryNotCallableError{Factory: fn, Reason: "not a function"}
	}
	if reflect.ValueOf(fn).IsNil() {
		return nil, &FactoryNotCallableError{Factory: fn, Reason: "factory is nil"}
	}

	// A variadic function with a single parameter can be called with
	// zero arguments.
	if t.NumIn() > 0 && !(t.NumIn() == 1 && t.IsVariadic()) {
		return nil, &FactoryNotCallableError{Factory: fn, Reason: "requires arguments"}
	}

	switch {
	case t.NumOut() == 1 && t.Out(0) != typError:
		return &factory{fn: reflect.ValueOf(fn)}, nil
	case t.NumOut() == 2 && t.Out(0) != typError && t.Out(1) == typError:
		return &factory{fn: reflect.ValueOf(fn), hasErr: true}, nil
	default:
		return nil, &FactoryNotCallableError{Factory: fn, Reason: "must return a value, or a value and an error"}
	}
}

// call invokes the factory with no arguments.
func (f *factory) call() (any, error) {
	out := f.fn.Call(nil)

	if f.hasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
