package scope

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sectrean/scope-kit/internal/errors"
)

// scopeCore implements the Scope contract over a bindingStore. The scope
// kinds embed it and differ only in their storage strategy and, for
// RequestScope, the guards layered on top.
type scopeCore struct {
	log       *slog.Logger
	bindings  bindingStore
	factories *xsync.MapOf[any, *factory]
}

func newScopeCore(name string, cfg *config, store bindingStore) scopeCore {
	return scopeCore{
		log:       cfg.logger.With(slog.String("scope", name)),
		bindings:  store,
		factories: xsync.NewMapOf[any, *factory](),
	}
}

// Bind registers value as the binding for key, replacing any existing
// binding. The replacement is logged.
func (c *scopeCore) Bind(key, value any) error {
	if c.IsBound(key) {
		c.log.Info("overriding existing binding", "key", formatKey(key))
		_ = c.Unbind(key)
	}

	c.bindings.Store(key, value)
	c.log.Info("bound value", "key", formatKey(key), "value", value)

	return nil
}

// Unbind removes the binding for key. Unbinding an absent key is a no-op.
func (c *scopeCore) Unbind(key any) error {
	if _, ok := c.bindings.Load(key); ok {
		c.bindings.Delete(key)
		c.log.Info("removed binding", "key", formatKey(key))
	}

	return nil
}

// IsBound reports whether a direct binding exists for key. A factory
// registered for key does not count until Get has invoked it.
func (c *scopeCore) IsBound(key any) bool {
	_, ok := c.bindings.Load(key)
	return ok
}

// BindFactory registers fn as the lazy producer for key, replacing any
// existing factory. If fn is rejected the existing factory is kept.
func (c *scopeCore) BindFactory(key, fn any) error {
	f, err := newFactory(fn)
	if err != nil {
		return err
	}

	c.UnbindFactory(key)
	c.factories.Store(key, f)

	return nil
}

// UnbindFactory removes the factory for key. Removing an absent factory
// is a no-op.
func (c *scopeCore) UnbindFactory(key any) {
	if _, ok := c.factories.LoadAndDelete(key); ok {
		c.log.Info("removed factory", "key", formatKey(key))
	}
}

// IsFactoryBound reports whether a factory is registered for key.
func (c *scopeCore) IsFactoryBound(key any) bool {
	_, ok := c.factories.Load(key)
	return ok
}

// Get returns the value bound to key. When key has no direct binding but
// a factory is registered, the factory is invoked and its result bound
// before being returned. When key has neither, Get returns (nil, nil).
//
// A factory error is returned without binding anything, so the next Get
// invokes the factory again.
func (c *scopeCore) Get(key any) (any, error) {
	if v, ok := c.bindings.Load(key); ok {
		return v, nil
	}

	f, ok := c.factories.Load(key)
	if !ok {
		return nil, nil
	}

	v, err := f.call()
	if err != nil {
		return nil, errors.Wrapf(err, "invoke factory for %s", formatKey(key))
	}

	_ = c.Bind(key, v)
	return v, nil
}

// formatKey renders a binding key for logs and error messages.
func formatKey(key any) string {
	if t, ok := key.(reflect.Type); ok {
		return t.String()
	}
	return fmt.Sprintf("%v", key)
}
