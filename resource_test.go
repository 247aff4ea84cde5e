package arena

import (
	"testing"
	"unsafe"
)

func TestResourceAllocateDelegatesToArena(t *testing.T) {
	a := New()
	defer a.Close()

	res := a.Resource()
	p := res.Allocate(64, 8)
	if p == nil {
		t.Fatal("Resource().Allocate(64, 8) = nil")
	}
	if a.SpaceUsed() != 64 {
		t.Errorf("SpaceUsed() = %d, want 64", a.SpaceUsed())
	}
}

func TestResourceDeallocateIsNoOp(t *testing.T) {
	a := New()
	defer a.Close()

	res := a.Resource()
	p := res.Allocate(32, 8)
	before := a.SpaceUsed()
	res.Deallocate(p, 32, 8)
	if a.SpaceUsed() != before {
		t.Errorf("SpaceUsed() changed after Deallocate: %d -> %d", before, a.SpaceUsed())
	}
}

func TestResourceEqualSameArena(t *testing.T) {
	a := New()
	defer a.Close()

	r1 := a.Resource()
	r2 := a.Resource()
	if !r1.Equal(r2) {
		t.Error("two resources from the same arena are not Equal")
	}
}

func TestResourceEqualDifferentArenas(t *testing.T) {
	a1 := New()
	defer a1.Close()
	a2 := New()
	defer a2.Close()

	if a1.Resource().Equal(a2.Resource()) {
		t.Error("resources from different arenas compared Equal")
	}
}

func TestResourceEqualRejectsForeignImplementation(t *testing.T) {
	a := New()
	defer a.Close()

	if a.Resource().Equal(fakeResource{}) {
		t.Error("Resource().Equal accepted a non-resource AllocationResource")
	}
}

type fakeResource struct{}

func (fakeResource) Allocate(int, uintptr) unsafe.Pointer    { return nil }
func (fakeResource) Deallocate(unsafe.Pointer, int, uintptr) {}
func (fakeResource) Equal(AllocationResource) bool           { return false }
