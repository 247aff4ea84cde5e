// Package containers bundles the allocator-aware container types this
// module ships as direct consumers of arena.AllocationResource: the
// integration surface described in §4.6 of the design needs at least one
// concrete container to exercise it, the way the original design's
// polymorphic-allocator-aware containers exercise a pmr::memory_resource.
package containers

import (
	"unsafe"

	"github.com/clapdb/arena"
)

// Vector is a growable, arena-backed sequence of T, the Go rendering of
// a polymorphic-allocator-aware std::pmr::vector<T>. Its element storage
// always comes from arena.AllocationResource.Allocate; growth copies
// into a fresh, larger allocation rather than ever calling Deallocate on
// the old one, since the backing arena only reclaims in bulk.
//
// Vector never asks the arena to register per-element cleanup, whatever
// T is: elements whose type has a Destroy method are not destroyed
// either. For trivially destructible T (no Destroy method) nothing is
// lost, since the elements require no individual destruction and the
// arena's Deallocate is a no-op anyway, matching §4.4's
// PMR-trivial-container skip rule.
type Vector[T any] struct {
	res  arena.AllocationResource
	data []T
}

// NewVector creates an empty Vector backed by res, pre-sized for
// capacity elements.
func NewVector[T any](res arena.AllocationResource, capacity int) *Vector[T] {
	v := &Vector[T]{res: res}
	if capacity > 0 {
		v.data = allocSlice[T](res, capacity)[:0]
	}
	return v
}

// Len returns the number of elements currently stored.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.data[i] }

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, value T) { v.data[i] = value }

// Slice returns the Vector's current contents as a plain Go slice backed
// by arena storage. Callers must not retain it past the arena's next
// Reset or Close.
func (v *Vector[T]) Slice() []T { return v.data }

// Append adds items to the end of the Vector, growing into a fresh
// arena allocation when the current one lacks capacity.
func (v *Vector[T]) Append(items ...T) {
	if len(v.data)+len(items) <= cap(v.data) {
		v.data = append(v.data, items...)
		return
	}
	newCap := cap(v.data)
	if newCap == 0 {
		newCap = 4
	}
	for newCap < len(v.data)+len(items) {
		newCap *= 2
	}
	next := allocSlice[T](v.res, newCap)[:len(v.data)]
	copy(next, v.data)
	v.data = append(next, items...)
}

// allocSlice reserves a slice of n zero-valued T from res.
func allocSlice[T any](res arena.AllocationResource, n int) []T {
	var zero T
	elemAlign := unsafe.Alignof(zero)
	elemSize := int(unsafe.Sizeof(zero))
	p := res.Allocate(elemSize*n, elemAlign)
	b := unsafe.Slice((*byte)(p), elemSize*n)
	clear(b)
	return unsafe.Slice((*T)(p), n)
}
