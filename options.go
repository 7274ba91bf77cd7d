package scope

import (
	"log/slog"

	"github.com/sectrean/scope-kit/internal/errors"
)

// Option configures a scope. Options can be used with
// [NewApplicationScope], [NewGoroutineScope], [NewRequestScope],
// and [NewRegistry].
type Option interface {
	applyConfig(*config) error
}

type optionFunc func(*config) error

func (f optionFunc) applyConfig(c *config) error {
	return f(c)
}

// config carries the settings shared by all scope kinds.
type config struct {
	logger *slog.Logger
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		logger: slog.Default(),
	}

	var errs []error
	for _, o := range opts {
		if err := o.applyConfig(cfg); err != nil {
			errs = append(errs, err)
		}
	}

	return cfg, errors.Join(errs...)
}

// WithLogger sets the logger used to record binding events.
//
// Scopes log when a binding is created, overridden, or removed, and when
// a factory is removed. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(c *config) error {
		if logger == nil {
			return errors.New("WithLogger: logger is nil")
		}

		c.logger = logger
		return nil
	})
}
