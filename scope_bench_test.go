package scope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sectrean/scope-kit"
	"github.com/sectrean/scope-kit/internal/testtypes"
)

func BenchmarkApplicationScope_IsBound(b *testing.B) {
	s, err := scope.NewApplicationScope()
	require.NoError(b, err)
	require.NoError(b, scope.Bind(s, &testtypes.Config{DSN: "db"}))

	key := scope.KeyOf[*testtypes.Config]()

	for i := 0; i < b.N; i++ {
		_ = s.IsBound(key)
	}
}

func BenchmarkApplicationScope_Get(b *testing.B) {
	s, err := scope.NewApplicationScope()
	require.NoError(b, err)
	require.NoError(b, scope.Bind(s, &testtypes.Config{DSN: "db"}))

	key := scope.KeyOf[*testtypes.Config]()

	for i := 0; i < b.N; i++ {
		_, _ = s.Get(key)
	}
}

func BenchmarkApplicationScope_Get_Factory(b *testing.B) {
	s, err := scope.NewApplicationScope()
	require.NoError(b, err)

	key := scope.KeyOf[*testtypes.Config]()
	err = s.BindFactory(key, func() *testtypes.Config {
		return &testtypes.Config{DSN: "db"}
	})
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		_, _ = s.Get(key)
	}
}

func BenchmarkGoroutineScope_Get(b *testing.B) {
	s, err := scope.NewGoroutineScope()
	require.NoError(b, err)
	require.NoError(b, scope.Bind(s, &testtypes.Config{DSN: "db"}))

	key := scope.KeyOf[*testtypes.Config]()

	for i := 0; i < b.N; i++ {
		_, _ = s.Get(key)
	}
}

func BenchmarkRequestScope_Get(b *testing.B) {
	s, err := scope.NewRequestScope()
	require.NoError(b, err)

	s.Start()
	defer s.End()

	require.NoError(b, scope.Bind(s, &testtypes.Config{DSN: "db"}))

	key := scope.KeyOf[*testtypes.Config]()

	for i := 0; i < b.N; i++ {
		_, _ = s.Get(key)
	}
}
