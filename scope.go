// Package scope provides object-lifecycle registries for dependency
// injection. Values are bound to keys and reused according to a lifetime
// policy: once per process, once per goroutine, or once per logical
// request on a goroutine.
package scope

import "reflect"

// Scope is a registry of bindings with a reuse policy.
//
// A Scope maps comparable keys to values. Keys are usually the
// [reflect.Type] of the bound value, via [KeyOf], but any comparable
// value works. Values can be bound directly with Bind, or produced
// lazily by a factory registered with BindFactory and memoized on first
// Get.
//
// Scope is implemented by [*ApplicationScope], [*GoroutineScope], and
// [*RequestScope].
type Scope interface {
	// Bind registers value as the binding for key, replacing any existing
	// binding. RequestScope fails with ErrNoRequest when the calling
	// goroutine has no active request.
	Bind(key, value any) error

	// Unbind removes the binding for key. Unbinding an absent key is a
	// no-op. RequestScope fails with ErrNoRequest when the calling
	// goroutine has no active request.
	Unbind(key any) error

	// IsBound reports whether a direct binding exists for key. A factory
	// registered for key does not count until Get has invoked it.
	IsBound(key any) bool

	// BindFactory registers factory as the lazy producer for key,
	// replacing any existing factory. The factory must be a function
	// callable with no arguments that returns a value, or a value and an
	// error; anything else is rejected with a *FactoryNotCallableError
	// and the existing factory is kept.
	BindFactory(key, factory any) error

	// UnbindFactory removes the factory for key. Removing an absent
	// factory is a no-op. Values already produced by the factory stay
	// bound.
	UnbindFactory(key any)

	// IsFactoryBound reports whether a factory is registered for key.
	IsFactoryBound(key any) bool

	// Get returns the value bound to key. When key has no direct binding
	// but a factory is registered, the factory is invoked and its result
	// bound before being returned. When key has neither, Get returns
	// (nil, nil); absence is not an error. RequestScope fails with
	// ErrNoRequest when the calling goroutine has no active request.
	Get(key any) (any, error)
}

// KeyOf returns the binding key for type T.
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Bind registers value under the type key for T.
//
// Binding under an explicit type parameter lets a value be bound as an
// interface it implements:
//
//	err := scope.Bind[fs.FS](s, os.DirFS("/tmp"))
func Bind[T any](s Scope, value T) error {
	return s.Bind(KeyOf[T](), value)
}

// Get returns the value bound under the type key for T. The zero value
// with a nil error means T is not bound.
func Get[T any](s Scope) (T, error) {
	var val T

	anyVal, err := s.Get(KeyOf[T]())
	if anyVal != nil {
		val = anyVal.(T)
	}

	return val, err
}

// MustGet returns the value bound under the type key for T. It panics if
// the lookup fails.
func MustGet[T any](s Scope) T {
	val, err := Get[T](s)
	if err != nil {
		panic(err)
	}

	return val
}
