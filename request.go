package scope

import "github.com/sectrean/scope-kit/internal/errors"

// RequestScope reuses bindings for the duration of one logical request
// on the calling goroutine. A request is bracketed by Start and End;
// [RequestScope.Do] runs a function inside such a bracket.
//
// Bind, Unbind, and Get require an active request on the calling
// goroutine and fail with [ErrNoRequest] otherwise. IsBound,
// IsFactoryBound, BindFactory, and UnbindFactory work at any time:
// factories configure the scope and outlive any single request.
//
// End discards every binding made during the request. Factories are
// kept, so the next request re-invokes them on first Get.
type RequestScope struct {
	GoroutineScope

	store *goroutineStore
}

var _ Scope = (*RequestScope)(nil)

// NewRequestScope creates a request-lived scope.
func NewRequestScope(opts ...Option) (*RequestScope, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "scope.NewRequestScope")
	}

	return newRequestScope(cfg), nil
}

func newRequestScope(cfg *config) *RequestScope {
	store := newGoroutineStore()

	return &RequestScope{
		GoroutineScope: GoroutineScope{
			scopeCore: newScopeCore("request", cfg, store),
		},
		store: store,
	}
}

// Start begins a request on the calling goroutine. Starting an already
// active request is a no-op; bindings made so far are kept.
func (s *RequestScope) Start() {
	s.store.startRequest()
}

// End finishes the request on the calling goroutine and discards every
// binding made during it. Ending when no request is active is a no-op.
func (s *RequestScope) End() {
	s.store.endRequest()
}

// Active reports whether the calling goroutine has an active request.
func (s *RequestScope) Active() bool {
	return s.store.requestActive()
}

// Do runs fn bracketed by Start and End on the calling goroutine. End
// runs even when fn returns an error or panics. fn's error is returned
// unchanged.
func (s *RequestScope) Do(fn func() error) error {
	s.Start()
	defer s.End()

	return fn()
}

// Bind registers value as the binding for key within the active request.
// It fails with [ErrNoRequest] when the calling goroutine has none.
func (s *RequestScope) Bind(key, value any) error {
	if err := s.requireRequest(); err != nil {
		return err
	}

	return s.GoroutineScope.Bind(key, value)
}

// Unbind removes the binding for key within the active request. It fails
// with [ErrNoRequest] when the calling goroutine has none.
func (s *RequestScope) Unbind(key any) error {
	if err := s.requireRequest(); err != nil {
		return err
	}

	return s.GoroutineScope.Unbind(key)
}

// Get returns the value bound to key within the active request, invoking
// a registered factory on first use. It fails with [ErrNoRequest] when
// the calling goroutine has none.
func (s *RequestScope) Get(key any) (any, error) {
	if err := s.requireRequest(); err != nil {
		return nil, err
	}

	return s.GoroutineScope.Get(key)
}

func (s *RequestScope) requireRequest() error {
	if !s.store.requestActive() {
		return ErrNoRequest
	}

	return nil
}
