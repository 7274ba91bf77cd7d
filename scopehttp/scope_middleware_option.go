package scopehttp

import (
	"net/http"

	"github.com/sectrean/scope-kit"
	"github.com/sectrean/scope-kit/internal/errors"
)

// MiddlewareOption is an option used to configure the scope middleware
// when calling [NewRequestScopeMiddleware].
type MiddlewareOption interface {
	applyScopeMiddleware(*scopeMiddleware) error
}

type middlewareOption func(*scopeMiddleware) error

func (o middlewareOption) applyScopeMiddleware(m *scopeMiddleware) error {
	return o(m)
}

// WithRequestSetup adds a function that binds additional values into the
// scope when each request starts, before the handler runs. Setup
// functions run in the order they were added; an error stops the request
// and is passed to the setup error handler.
func WithRequestSetup(fn func(s *scope.RequestScope, r *http.Request) error) MiddlewareOption {
	return middlewareOption(func(m *scopeMiddleware) error {
		if fn == nil {
			return errors.New("WithRequestSetup: fn is nil")
		}

		m.setups = append(m.setups, fn)
		return nil
	})
}

// WithSetupErrorHandler sets the error handler for when the request scope
// cannot be prepared.
func WithSetupErrorHandler(h SetupErrorHandler) MiddlewareOption {
	return middlewareOption(func(m *scopeMiddleware) error {
		if h == nil {
			return errors.New("WithSetupErrorHandler: h is nil")
		}

		m.setupHandler = h
		return nil
	})
}
