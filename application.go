package scope

import "github.com/sectrean/scope-kit/internal/errors"

// ApplicationScope reuses bindings for the life of the process. Every
// goroutine sees the same bindings.
type ApplicationScope struct {
	scopeCore
}

var _ Scope = (*ApplicationScope)(nil)

// NewApplicationScope creates a process-wide scope.
//
// The scope binds itself under KeyOf[*ApplicationScope](), so resolving
// the scope through itself works like any other lookup.
func NewApplicationScope(opts ...Option) (*ApplicationScope, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "scope.NewApplicationScope")
	}

	return newApplicationScope(cfg), nil
}

func newApplicationScope(cfg *config) *ApplicationScope {
	s := &ApplicationScope{
		scopeCore: newScopeCore("application", cfg, newSharedStore()),
	}
	_ = s.Bind(KeyOf[*ApplicationScope](), s)

	return s
}
