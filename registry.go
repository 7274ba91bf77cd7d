package scope

import "github.com/sectrean/scope-kit/internal/errors"

// Registry holds one configured scope per lifetime. Build it once at
// startup and hand it to the code that binds and resolves values.
//
// The goroutine and request scopes are bound into the application scope
// under their type keys, so they can be resolved like any other
// application-wide value.
type Registry struct {
	app *ApplicationScope
	gor *GoroutineScope
	req *RequestScope
}

// NewRegistry creates the three scopes with shared options.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "scope.NewRegistry")
	}

	app := newApplicationScope(cfg)
	gor := newGoroutineScope(cfg)
	req := newRequestScope(cfg)

	_ = app.Bind(KeyOf[*GoroutineScope](), gor)
	_ = app.Bind(KeyOf[*RequestScope](), req)

	return &Registry{
		app: app,
		gor: gor,
		req: req,
	}, nil
}

// Application returns the process-wide scope.
func (r *Registry) Application() *ApplicationScope {
	return r.app
}

// Goroutine returns the goroutine-local scope.
func (r *Registry) Goroutine() *GoroutineScope {
	return r.gor
}

// Request returns the request-lived scope.
func (r *Registry) Request() *RequestScope {
	return r.req
}

// Scope returns the scope for the given lifetime.
func (r *Registry) Scope(l Lifetime) (Scope, error) {
	switch l {
	case Application:
		return r.app, nil
	case Goroutine:
		return r.gor, nil
	case Request:
		return r.req, nil
	default:
		return nil, errors.Errorf("no scope for lifetime %s", l)
	}
}
