package arena

import (
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena for callers that
// need a single arena shared across goroutines. It serializes access; it
// does not parallelize allocation into shared blocks, matching §5's
// Non-goal of thread-safe concurrent allocation into the same arena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena configured by opts.
func NewSafeArena(opts ...Option) *SafeArena {
	return &SafeArena{a: New(opts...)}
}

// AllocAligned thread-safely serves n aligned bytes.
func (s *SafeArena) AllocAligned(n int, align uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(n, align)
}

// RegisterCleanup thread-safely registers a cleanup thunk.
func (s *SafeArena) RegisterCleanup(ptr unsafe.Pointer, fn func(unsafe.Pointer)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RegisterCleanup(ptr, fn)
}

// Reset thread-safely resets the underlying arena.
func (s *SafeArena) Reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reset()
}

// Close thread-safely closes the underlying arena.
func (s *SafeArena) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Close()
}

// SpaceAllocated thread-safely returns the underlying arena's metric.
func (s *SafeArena) SpaceAllocated() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SpaceAllocated()
}

// SpaceUsed thread-safely returns the underlying arena's metric.
func (s *SafeArena) SpaceUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SpaceUsed()
}

// Metrics thread-safely returns a snapshot of the underlying arena.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SafeNew thread-safely constructs a T inside s.
func SafeNew[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return New[T](s.a)
}

// SafeNewWith thread-safely constructs a T inside s using ctor.
func SafeNewWith[T any](s *SafeArena, ctor func(*Arena) T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewWith[T](s.a, ctor)
}

// SafeNewSlice thread-safely allocates a slice of n elements of type T.
func SafeNewSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewSlice[T](s.a, n)
}
