package arena

import (
	"errors"
	"testing"
	"unsafe"
)

func TestRegisterThreeThenReset(t *testing.T) {
	a := New()
	defer a.Close()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		v := i
		a.RegisterCleanup(unsafe.Pointer(&v), func(unsafe.Pointer) {
			order = append(order, i)
		})
	}
	a.Reset()
	if got, want := order, []int{2, 1, 0}; !equalInts(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	order = nil
	for i := 3; i < 5; i++ {
		i := i
		v := i
		a.RegisterCleanup(unsafe.Pointer(&v), func(unsafe.Pointer) {
			order = append(order, i)
		})
	}
	a.Close()
	if got, want := order, []int{4, 3}; !equalInts(got, want) {
		t.Errorf("order after second batch = %v, want %v", got, want)
	}
}

func TestRegisterCleanupSpillFailurePropagates(t *testing.T) {
	ps := &failingPageSource{failCount: 1}
	a := New(WithNormalBlockSize(minBlockSize), WithPageSource(ps))
	// First allocation succeeds and creates the only block this page
	// source will ever provide.
	a.AllocAligned(minBlockSize-8, 8)

	v := 1
	if a.RegisterCleanup(unsafe.Pointer(&v), func(unsafe.Pointer) {}) {
		t.Error("RegisterCleanup succeeded despite a page source that must fail to spill")
	}
}

func TestTryAllocAlignedReturnsErrorOnPageSourceFailure(t *testing.T) {
	ps := &failingPageSource{failCount: 0}
	a := New(WithPageSource(ps))

	_, err := a.TryAllocAligned(8, 8)
	if !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("err = %v, want wrapping ErrAllocationFailed", err)
	}
}

func TestAllocateAndRegisterCleanupIsAllOrNothing(t *testing.T) {
	// A page source that allows exactly one block: enough for the
	// object but, once that block's cleanup budget is exhausted,
	// spilling for further cleanups must fail cleanly without leaving a
	// dangling allocation.
	ps := &failingPageSource{failCount: 1}
	a := New(WithNormalBlockSize(minBlockSize), WithPageSource(ps))

	// Exhaust the first block's allocation headroom but leave no room
	// for a second cleanup-only block once the page source starts
	// failing.
	a.AllocAligned(minBlockSize-8, 8)

	posBefore := a.head.pos
	counter := 0
	_, err := a.allocateAndRegisterCleanup(8, 8, func(unsafe.Pointer) { counter++ })
	if err == nil {
		t.Fatal("expected allocateAndRegisterCleanup to fail when growth is exhausted")
	}
	if a.head.pos != posBefore {
		t.Errorf("block pos = %d after failed allocateAndRegisterCleanup, want %d (allocation rolled back)", a.head.pos, posBefore)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
