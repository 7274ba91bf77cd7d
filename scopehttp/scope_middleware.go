package scopehttp

import (
	"log/slog"
	"net/http"

	"github.com/sectrean/scope-kit"
	"github.com/sectrean/scope-kit/internal/errors"
	"github.com/sectrean/scope-kit/scopecontext"
)

// NewRequestScopeMiddleware returns middleware that brackets each HTTP
// request with [scope.RequestScope.Start] and [scope.RequestScope.End].
// Bindings made while handling a request are discarded when it completes.
//
// The current [*http.Request] is bound into the request scope. It can be
// resolved by handlers and request setup functions.
//
// The scope is stored on the request context and can be accessed using
// [scopecontext.Scope], [scopecontext.Get], or [scopecontext.MustGet].
//
// Available options:
//   - WithRequestSetup: Bind additional values when each request starts.
//   - WithSetupErrorHandler: Set the error handler for when the request
//     scope cannot be prepared.
func NewRequestScopeMiddleware(rs *scope.RequestScope, opts ...MiddlewareOption) (func(http.Handler) http.Handler, error) {
	if rs == nil {
		return nil, errors.New("scopehttp.NewRequestScopeMiddleware: scope is nil")
	}

	mw := &scopeMiddleware{
		scope:        rs,
		setupHandler: defaultSetupErrorHandler,
	}

	var errs []error
	for _, opt := range opts {
		if err := opt.applyScopeMiddleware(mw); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "scopehttp.NewRequestScopeMiddleware")
	}

	return func(next http.Handler) http.Handler {
		return &scopeHandler{
			mw:   mw,
			next: next,
		}
	}, nil
}

// SetupErrorHandler is a function that writes an error response to the
// client. It is called by the scope middleware when the request scope
// cannot be prepared.
//
// The default handler logs the error to [slog.Default] and writes a
// 500 Internal Server Error response.
type SetupErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultSetupErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error preparing HTTP request scope", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type scopeMiddleware struct {
	scope        *scope.RequestScope
	setups       []func(s *scope.RequestScope, r *http.Request) error
	setupHandler SetupErrorHandler
}

type scopeHandler struct {
	mw   *scopeMiddleware
	next http.Handler
}

func (h *scopeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m := h.mw

	ctx := scopecontext.WithScope(r.Context(), m.scope)
	r = r.WithContext(ctx)

	m.scope.Start()
	defer m.scope.End()

	if err := m.prepare(r); err != nil {
		m.setupHandler(w, r, err)
		return
	}

	h.next.ServeHTTP(w, r)
}

func (m *scopeMiddleware) prepare(r *http.Request) error {
	if err := m.scope.Bind(scope.KeyOf[*http.Request](), r); err != nil {
		return err
	}

	for _, setup := range m.setups {
		if err := setup(m.scope, r); err != nil {
			return err
		}
	}

	return nil
}
