package scope

import "github.com/sectrean/scope-kit/internal/errors"

// GoroutineScope isolates bindings per calling goroutine. A value bound
// on one goroutine is invisible to every other goroutine.
//
// Factories registered with BindFactory are shared across goroutines,
// but each goroutine memoizes its own result: the first Get on a
// goroutine invokes the factory and binds the result for that goroutine
// only.
//
// Bindings are retained until the owning goroutine unbinds them; the
// scope cannot observe goroutine exit. Code that spawns many short-lived
// goroutines should bind through a [RequestScope] instead, whose End
// releases the goroutine's bindings.
type GoroutineScope struct {
	scopeCore
}

var _ Scope = (*GoroutineScope)(nil)

// NewGoroutineScope creates a goroutine-local scope.
func NewGoroutineScope(opts ...Option) (*GoroutineScope, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "scope.NewGoroutineScope")
	}

	return newGoroutineScope(cfg), nil
}

func newGoroutineScope(cfg *config) *GoroutineScope {
	return &GoroutineScope{
		scopeCore: newScopeCore("goroutine", cfg, newGoroutineStore()),
	}
}
