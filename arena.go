// Package arena implements a region-based bump allocator (an "arena") for
// short- to medium-lived allocations with low per-allocation cost,
// improved locality, and bulk reclamation.
//
// An Arena owns a chain of large contiguous blocks. It services typed and
// untyped allocations from those blocks by bump-pointer advance, records
// cleanup closures for values that need one, and releases every
// allocation together at Reset or Close by running recorded cleanups in
// reverse order.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/clapdb/arena/internal/metrics"
)

// Arena is a chunked bump allocator. It is single-owner and
// single-goroutine: all operations on a given Arena must be serialized
// externally. Use SafeArena for a mutex-protected wrapper.
type Arena struct {
	opts Options
	head *block

	totalAllocated int // cumulative bytes obtained from the page source
	local          metrics.Local
	closed         bool
}

// New creates a new Arena configured by opts.
func New(opts ...Option) *Arena {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

// NewWithOptions creates a new Arena with an explicit Options value.
func NewWithOptions(o Options) *Arena {
	o = o.resolve()
	a := &Arena{opts: o}
	a.local.ArenaCount = 1
	if o.OnInit != nil {
		o.OnInit(0)
	}
	return a
}

// AllocAligned serves n bytes aligned to align from the arena, growing
// the block chain if necessary. align must be a power of two; align of 0
// means the platform word size. It panics on a precondition violation
// (§7.2) and on page-source failure once growth is exhausted; use
// TryAllocAligned to observe allocation failure as an error instead.
func (a *Arena) AllocAligned(n int, align uintptr) unsafe.Pointer {
	p, err := a.TryAllocAligned(n, align)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocAligned is AllocAligned's error-returning counterpart. As with
// AllocAligned, an align of 0 means the platform word size. It still
// panics on precondition violations (non-power-of-two alignment,
// negative size) since those are programmer errors, not recoverable
// conditions; it returns ErrAllocationFailed only when the page source
// itself fails to supply a needed block.
func (a *Arena) TryAllocAligned(n int, align uintptr) (unsafe.Pointer, error) {
	a.panicIfClosed()
	if n < 0 {
		panic(fmt.Sprintf("arena: negative allocation size %d", n))
	}
	if align == 0 {
		align = wordSize
	}
	if !isPowerOfTwo(align) {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", align))
	}

	if n == 0 {
		if a.head == nil {
			if err := a.grow(0, align); err != nil {
				return nil, err
			}
		}
		return a.head.allocateZero(), nil
	}

	if a.head != nil {
		if p, padding, ok := a.head.allocate(n, align); ok {
			a.recordAllocation(n, padding)
			return p, nil
		}
	}
	if err := a.grow(n, align); err != nil {
		return nil, err
	}
	p, padding, ok := a.head.allocate(n, align)
	if !ok {
		// A freshly grown block must satisfy a request it was sized for.
		panic("arena: internal error, new block could not satisfy allocation it was sized for")
	}
	a.recordAllocation(n, padding)
	return p, nil
}

// allocateAndRegisterCleanup atomically reserves n bytes aligned to align
// and a cleanup slot for fn in the same block, growing once if the
// current block cannot satisfy both. This guarantees cleanup records run
// in strict reverse order of creation when the arena is torn down, since
// the block that ends up holding both the object and its cleanup record
// is reverse-walked as a unit.
func (a *Arena) allocateAndRegisterCleanup(n int, align uintptr, fn func(unsafe.Pointer)) (unsafe.Pointer, error) {
	a.panicIfClosed()
	if align == 0 {
		align = wordSize
	}
	if !isPowerOfTwo(align) {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", align))
	}

	if p, ok := a.tryAllocateAndRegister(a.head, n, align, fn); ok {
		return p, nil
	}
	if err := a.growForCleanup(n, align); err != nil {
		return nil, err
	}
	p, ok := a.tryAllocateAndRegister(a.head, n, align, fn)
	if !ok {
		panic("arena: internal error, new block could not satisfy allocation+cleanup it was sized for")
	}
	return p, nil
}

// tryAllocateAndRegister attempts the atomic reserve-then-register step
// against a specific block, rolling the allocation back if the cleanup
// slot does not fit, so no orphaned reservation is ever left behind.
func (a *Arena) tryAllocateAndRegister(b *block, n int, align uintptr, fn func(unsafe.Pointer)) (unsafe.Pointer, bool) {
	if b == nil {
		return nil, false
	}
	savedPos := b.pos
	p, padding, ok := b.allocate(n, align)
	if !ok {
		return nil, false
	}
	if !b.registerCleanup(p, fn) {
		b.pos = savedPos
		return nil, false
	}
	a.recordAllocation(n, padding)
	return p, true
}

// EnsureCapacity grows the block chain, if needed, so that at least n
// bytes are available for a subsequent AllocAligned(n, align) without
// itself triggering growth. It is a hint for callers about to issue a
// batch of allocations whose combined size they know up front.
func (a *Arena) EnsureCapacity(n int, align uintptr) {
	a.panicIfClosed()
	if align == 0 {
		align = wordSize
	}
	if a.head != nil {
		if _, _, ok := a.head.fits(n, align); ok {
			return
		}
	}
	if err := a.grow(n, align); err != nil {
		panic(err)
	}
}

// RegisterCleanup registers fn to be called with ptr when the arena is
// reset or closed. ptr need not point inside the current block, but must
// remain valid until the next Reset or Close. A nil ptr is a no-op. It
// returns false only if growth failed while spilling to a fresh
// cleanup-only block.
func (a *Arena) RegisterCleanup(ptr unsafe.Pointer, fn func(unsafe.Pointer)) bool {
	a.panicIfClosed()
	if ptr == nil {
		return true
	}
	if a.head != nil && a.head.registerCleanup(ptr, fn) {
		return true
	}
	if err := a.growForCleanup(0, wordSize); err != nil {
		return false
	}
	return a.head.registerCleanup(ptr, fn)
}

// recordAllocation updates per-arena metrics for a successful n-byte
// allocation with the given alignment padding.
func (a *Arena) recordAllocation(n, padding int) {
	a.local.AllocationCount++
	a.local.SpaceUsed += int64(n)
	a.local.SpaceWasted += int64(padding)
}

// grow appends a new block sized to satisfy an n-byte request at the
// given alignment, per the growth policy in §4.3.
func (a *Arena) grow(n int, align uintptr) error {
	return a.growSized(a.nextBlockSize(n, align, 0))
}

// growForCleanup appends a new block sized to satisfy an n-byte request
// (n may be 0 for a cleanup-only spill) plus one cleanup record.
func (a *Arena) growForCleanup(n int, align uintptr) error {
	return a.growSized(a.nextBlockSize(n, align, int(cleanupRecordSize)))
}

// nextBlockSize computes the desired size of the next block per the
// growth policy: the configured suggestor or doubling, bounded below by
// enough room for the request and bounded above by HugeBlockSize unless
// the request itself demands a dedicated oversized block.
func (a *Arena) nextBlockSize(n int, align uintptr, extra int) int {
	needed := n + int(align) - 1 + extra
	if needed > a.opts.HugeBlockSize {
		return needed // dedicated oversized block, sized exactly for the request
	}

	desired := a.opts.NormalBlockSize
	if a.opts.BlockSizeSuggestor != nil {
		desired = a.opts.BlockSizeSuggestor(a.totalAllocated)
	} else if a.head != nil {
		desired = a.head.size() * 2
	}
	if desired > a.opts.HugeBlockSize {
		desired = a.opts.HugeBlockSize
	}
	if desired < needed {
		desired = needed
	}
	return desired
}

// growSized requests a raw buffer of exactly size bytes from the page
// source and links it as the new head block.
func (a *Arena) growSized(size int) error {
	buf, err := a.opts.PageSource.GetPage(size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	a.head = newBlock(buf, a.head)
	a.totalAllocated += size
	a.local.BlockCount++
	a.local.SpaceAllocated += int64(size)
	return nil
}

// Reset runs every registered cleanup in reverse order of registration
// and returns the arena to an empty, reusable state, retaining the
// largest owned block for reuse. It returns the number of bytes
// reclaimed (bytes owned by every block that was released).
func (a *Arena) Reset() int {
	a.panicIfClosed()
	totalBytes, largest := a.teardownBlocks()
	a.head = largest
	reclaimed := totalBytes
	if a.head != nil {
		reclaimed -= a.head.size()
		a.head.pos = 0
		a.head.cleanupBudget = a.head.size()
		a.head.cleanups = nil
		a.head.prev = nil
	}
	a.local.ResetCount++
	a.local.SpaceUsed = 0
	a.local.SpaceWasted = 0
	if a.opts.OnReset != nil {
		a.opts.OnReset(a.totalAllocated)
	}
	return reclaimed
}

// Close runs every registered cleanup in reverse order of registration
// and drops every block. The Arena must not be used afterward except to
// inspect its final metrics.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	if a.opts.OnClose != nil {
		a.opts.OnClose(a.totalAllocated)
	}
	a.teardownBlocks()
	a.head = nil
	a.closed = true
	metrics.Merge(&a.local)
}

// teardownBlocks walks the block chain tail-first (head backward via
// prev), running every block's cleanups newest-first, which reproduces
// strict reverse-registration order across the whole arena. It returns
// the total bytes owned by all blocks and, separately, the single
// largest block encountered (for Reset's retain policy).
func (a *Arena) teardownBlocks() (totalBytes int, largest *block) {
	for b := a.head; b != nil; b = b.prev {
		a.local.CleanupCount += int64(b.runCleanups())
		totalBytes += b.size()
		if largest == nil || b.size() > largest.size() {
			largest = b
		}
	}
	return totalBytes, largest
}

// SpaceAllocated returns the total raw bytes obtained from the page
// source across all blocks this arena currently owns.
func (a *Arena) SpaceAllocated() int {
	total := 0
	for b := a.head; b != nil; b = b.prev {
		total += b.size()
	}
	return total
}

// SpaceUsed returns the total bytes handed out to callers since the last
// Reset, ignoring alignment padding.
func (a *Arena) SpaceUsed() int {
	return int(a.local.SpaceUsed)
}

// SpaceWasted returns the alignment padding consumed since the last
// Reset. Bytes reserved for cleanup records are not counted.
func (a *Arena) SpaceWasted() int {
	return int(a.local.SpaceWasted)
}

func (a *Arena) panicIfClosed() {
	if a.closed {
		panic(ErrClosed)
	}
}
