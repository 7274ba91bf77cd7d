// Package scopecontext stores a [scope.Scope] on a [context.Context] so
// request handlers can resolve bound values without threading the scope
// through every call.
package scopecontext

import (
	"context"

	"github.com/sectrean/scope-kit"
	"github.com/sectrean/scope-kit/internal/errors"
)

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided
// [scope.Scope].
func WithScope(ctx context.Context, s scope.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// Scope returns the [scope.Scope] stored on the [context.Context], if
// present.
func Scope(ctx context.Context) scope.Scope {
	if s, ok := ctx.Value(scopeContextKey{}).(scope.Scope); ok {
		return s
	}
	return nil
}

// Get returns the value bound under the type key for T in the
// [scope.Scope] stored on the [context.Context].
//
// Like [scope.Get], the zero value with a nil error means T is not bound.
func Get[T any](ctx context.Context) (T, error) {
	var val T

	s := Scope(ctx)
	if s == nil {
		return val, errors.Errorf("get %s from context: scope not found on context", scope.KeyOf[T]())
	}

	anyVal, err := s.Get(scope.KeyOf[T]())
	if anyVal != nil {
		val = anyVal.(T)
	}

	return val, errors.Wrap(err, "get from context")
}

// MustGet returns the value bound under the type key for T in the
// [scope.Scope] stored on the [context.Context]. It panics if the lookup
// fails.
func MustGet[T any](ctx context.Context) T {
	val, err := Get[T](ctx)
	if err != nil {
		panic(err)
	}
	return val
}
