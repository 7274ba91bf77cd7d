package scope

import (
	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v3"
)

// bindingStore is the storage strategy behind a scope's direct bindings.
// It decides which callers see which bindings.
type bindingStore interface {
	// Load returns the value bound to key and whether a binding exists.
	Load(key any) (any, bool)

	// Store binds value to key, replacing any existing binding.
	Store(key, value any)

	// Delete removes the binding for key, if any.
	Delete(key any)
}

// sharedStore is a single map visible to every goroutine.
//
// Individual map operations are linearizable, but no lock is held across
// a lookup-then-store sequence: when callers race, the last store wins.
type sharedStore struct {
	m *xsync.MapOf[any, any]
}

func newSharedStore() *sharedStore {
	return &sharedStore{
		m: xsync.NewMapOf[any, any](),
	}
}

func (s *sharedStore) Load(key any) (any, bool) {
	return s.m.Load(key)
}

func (s *sharedStore) Store(key, value any) {
	s.m.Store(key, value)
}

func (s *sharedStore) Delete(key any) {
	s.m.Delete(key)
}

// goroutineBindings is a single goroutine's view of a goroutineStore.
// Only the owning goroutine reads or writes it, so the map itself needs
// no synchronization.
type goroutineBindings struct {
	bindings map[any]any

	// active is the request flag used by RequestScope. It stays false on
	// partitions owned by a plain GoroutineScope.
	active bool
}

// goroutineStore isolates bindings per calling goroutine.
//
// Partitions are indexed by goroutine ID and created on first write.
// Only the create-if-absent step synchronizes; everything after it is
// goroutine-private.
type goroutineStore struct {
	parts *xsync.MapOf[int64, *goroutineBindings]
}

func newGoroutineStore() *goroutineStore {
	return &goroutineStore{
		parts: xsync.NewMapOf[int64, *goroutineBindings](),
	}
}

func (s *goroutineStore) Load(key any) (any, bool) {
	part, ok := s.parts.Load(goid.Get())
	if !ok {
		return nil, false
	}

	v, ok := part.bindings[key]
	return v, ok
}

func (s *goroutineStore) Store(key, value any) {
	s.partition().bindings[key] = value
}

func (s *goroutineStore) Delete(key any) {
	part, ok := s.parts.Load(goid.Get())
	if !ok {
		return
	}

	delete(part.bindings, key)
}

// partition returns the calling goroutine's bindings, creating them on
// first use.
func (s *goroutineStore) partition() *goroutineBindings {
	part, _ := s.parts.LoadOrCompute(goid.Get(), func() *goroutineBindings {
		return &goroutineBindings{
			bindings: make(map[any]any),
		}
	})
	return part
}

// startRequest marks the calling goroutine's partition active.
// Bindings already present are kept.
func (s *goroutineStore) startRequest() {
	s.partition().active = true
}

// endRequest drops the calling goroutine's partition, discarding its
// bindings and clearing the request flag.
func (s *goroutineStore) endRequest() {
	s.parts.Delete(goid.Get())
}

// requestActive reports whether the calling goroutine's partition is
// marked active.
func (s *goroutineStore) requestActive() bool {
	part, ok := s.parts.Load(goid.Get())
	return ok && part.active
}
