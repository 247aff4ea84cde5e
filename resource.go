package arena

import "unsafe"

// AllocationResource is an untyped allocation interface consumable by
// allocator-aware containers, the Go rendering of the original design's
// polymorphic-allocator-resource protocol ({allocate, deallocate,
// is_equal}). The standard library has no equivalent protocol to
// implement against, so this is a small hand-rolled interface that the
// bundled containers package (and any caller-supplied container
// following the same shape) consumes directly.
type AllocationResource interface {
	// Allocate reserves n bytes aligned to align.
	Allocate(n int, align uintptr) unsafe.Pointer
	// Deallocate is always a no-op for an arena-backed resource: arenas
	// only reclaim in bulk, at Reset or Close.
	Deallocate(p unsafe.Pointer, n int, align uintptr)
	// Equal reports whether other refers to the same underlying arena.
	Equal(other AllocationResource) bool
}

// resource adapts an *Arena to AllocationResource. Its lifetime is
// bounded by the arena's; containers that capture it must not outlive
// the arena.
type resource struct {
	a *Arena
}

// Resource returns an AllocationResource backed by a. Two resources
// obtained from the same Arena compare Equal.
func (a *Arena) Resource() AllocationResource {
	return &resource{a: a}
}

func (r *resource) Allocate(n int, align uintptr) unsafe.Pointer {
	return r.a.AllocAligned(n, align)
}

func (r *resource) Deallocate(unsafe.Pointer, int, uintptr) {
	// Intentionally a no-op: see AllocationResource.Deallocate.
}

func (r *resource) Equal(other AllocationResource) bool {
	o, ok := other.(*resource)
	return ok && o.a == r.a
}
