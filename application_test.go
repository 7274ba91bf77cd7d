package scope_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/scope-kit"
	"github.com/sectrean/scope-kit/internal/testtypes"
	"github.com/sectrean/scope-kit/internal/testutils"
)

// recordingHandler is a slog.Handler that keeps every record so tests can
// assert on logged binding events.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, r := range h.records {
		if r.Message == msg {
			n++
		}
	}
	return n
}

func Test_NewApplicationScope(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		assert.NotNil(t, s)
		assert.NoError(t, err)
	})

	t.Run("binds itself", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		got, err := scope.Get[*scope.ApplicationScope](s)
		assert.NoError(t, err)
		assert.Same(t, s, got)
	})

	t.Run("with logger", func(t *testing.T) {
		h := &recordingHandler{}
		s, err := scope.NewApplicationScope(scope.WithLogger(slog.New(h)))
		require.NoError(t, err)
		assert.NotNil(t, s)

		// Constructing the scope binds the scope itself.
		assert.Equal(t, 1, h.count("bound value"))
	})

	t.Run("with nil logger", func(t *testing.T) {
		s, err := scope.NewApplicationScope(scope.WithLogger(nil))
		testutils.LogError(t, err)

		assert.Nil(t, s)
		assert.EqualError(t, err, "scope.NewApplicationScope: WithLogger: logger is nil")
	})
}

func Test_ApplicationScope_Bind(t *testing.T) {
	t.Run("bind and get", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		key := scope.KeyOf[*testtypes.Config]()
		cfg := &testtypes.Config{DSN: "postgres://localhost"}
		require.NoError(t, s.Bind(key, cfg))

		assert.True(t, s.IsBound(key))

		got, err := s.Get(key)
		assert.NoError(t, err)
		assert.Same(t, cfg, got)
	})

	t.Run("rebinding logs one override", func(t *testing.T) {
		h := &recordingHandler{}
		s, err := scope.NewApplicationScope(scope.WithLogger(slog.New(h)))
		require.NoError(t, err)

		key := scope.KeyOf[*testtypes.Config]()
		require.NoError(t, s.Bind(key, &testtypes.Config{DSN: "one"}))
		require.NoError(t, s.Bind(key, &testtypes.Config{DSN: "two"}))

		got, err := scope.Get[*testtypes.Config](s)
		assert.NoError(t, err)
		assert.Equal(t, "two", got.DSN)

		assert.Equal(t, 1, h.count("overriding existing binding"))
		assert.Equal(t, 1, h.count("removed binding"))
		// Self-binding plus the two explicit binds.
		assert.Equal(t, 3, h.count("bound value"))
	})

	t.Run("visible to other goroutines", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		require.NoError(t, scope.Bind(s, &testtypes.Config{DSN: "shared"}))

		testutils.RunParallel(4, func(int) {
			got, err := scope.Get[*testtypes.Config](s)
			assert.NoError(t, err)
			assert.Equal(t, "shared", got.DSN)
		})
	})
}

func Test_ApplicationScope_Unbind(t *testing.T) {
	t.Run("removes the binding", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		key := scope.KeyOf[*testtypes.Config]()
		require.NoError(t, s.Bind(key, &testtypes.Config{}))
		require.NoError(t, s.Unbind(key))

		assert.False(t, s.IsBound(key))

		got, err := s.Get(key)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		assert.NoError(t, s.Unbind(scope.KeyOf[*testtypes.Config]()))
	})
}

func Test_ApplicationScope_Get(t *testing.T) {
	t.Run("absent key returns nil", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		got, err := s.Get(scope.KeyOf[*testtypes.Config]())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("non-type keys", func(t *testing.T) {
		s, err := scope.NewApplicationScope()
		require.NoError(t, err)

		require.NoError(t, s.Bind("db.dsn", "postgres://localhost"))

		got, err := s.Get("db.dsn")
		assert.NoError(t, err)
		assert.Equal(t, "postgres://localhost", got)
	})
}

func Test_ApplicationScope_Concurrent(t *testing.T) {
	s, err := scope.NewApplicationScope()
	require.NoError(t, err)

	key := scope.KeyOf[*testtypes.Config]()

	var calls atomic.Int32
	err = s.BindFactory(key, func() *testtypes.Config {
		calls.Add(1)
		return &testtypes.Config{DSN: "db"}
	})
	require.NoError(t, err)

	testutils.RunParallel(10, func(int) {
		got, err := scope.Get[*testtypes.Config](s)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	// Racing callers may each invoke the factory. The last result stays
	// bound, so later lookups stop invoking it.
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	assert.True(t, s.IsBound(key))

	got, err := scope.Get[*testtypes.Config](s)
	assert.NoError(t, err)
	assert.Equal(t, "db", got.DSN)
}
