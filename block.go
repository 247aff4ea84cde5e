package arena

import "unsafe"

// block is a single contiguous backing buffer owned by an arena. Objects
// are bump-allocated from the low end (pos grows upward); cleanup records
// are reserved from the high end (the cleanup budget shrinks downward),
// mirroring the original design's header-at-the-bottom,
// cleanup-area-at-the-top layout — except that in Go the cleanup records
// themselves live in a slice rather than packed into buf, since there is
// no need to hand-roll a binary record format when the language already
// gives every block its own typed registry.
type block struct {
	prev *block // previously allocated block, or nil for the first
	buf  []byte // backing storage

	pos           int // next allocation offset, grows upward
	cleanupBudget int // offset where the cleanup area begins (the allocation limit); starts at len(buf), shrinks downward
	cleanups      []cleanupRecord
}

// newBlock wraps buf as a fresh block linked after prev. The full buffer
// starts available for allocation and cleanup registration.
func newBlock(buf []byte, prev *block) *block {
	return &block{
		prev:          prev,
		buf:           buf,
		pos:           0,
		cleanupBudget: len(buf),
	}
}

// size is the total number of bytes this block owns.
func (b *block) size() int {
	return len(b.buf)
}

// allocate reserves n bytes aligned to a from the low end of the block.
// It reports false without mutating the block if the request does not
// fit.
func (b *block) allocate(n int, a uintptr) (unsafe.Pointer, int, bool) {
	base := uintptr(unsafe.Pointer(&b.buf[0]))
	start := int(alignUp(base+uintptr(b.pos), a) - base)
	end := start + n
	if end > b.cleanupBudget {
		return nil, 0, false
	}
	padding := start - b.pos
	b.pos = end
	return unsafe.Pointer(&b.buf[start]), padding, true
}

// fits reports whether n bytes aligned to a would currently fit, without
// mutating the block. It mirrors allocate's arithmetic exactly.
func (b *block) fits(n int, a uintptr) (start, padding int, ok bool) {
	base := uintptr(unsafe.Pointer(&b.buf[0]))
	start = int(alignUp(base+uintptr(b.pos), a) - base)
	end := start + n
	if end > b.cleanupBudget {
		return 0, 0, false
	}
	return start, start - b.pos, true
}

// allocateZero is the zero-length special case: it returns a stable
// pointer at the current position without advancing pos, per the
// zero-size allocation tie-break rule.
func (b *block) allocateZero() unsafe.Pointer {
	if b.pos == len(b.buf) {
		// Nothing left to point at; fall back to a pointer just past the
		// last valid byte, which is still safe to hold (never
		// dereferenced for a zero-size allocation).
		return unsafe.Pointer(uintptr(unsafe.Pointer(&b.buf[0])) + uintptr(b.pos))
	}
	return unsafe.Pointer(&b.buf[b.pos])
}

// registerCleanup reserves a cleanup-record slot from the high end of the
// block. It reports false without mutating the block if the record does
// not fit alongside the already-reserved allocation area.
func (b *block) registerCleanup(ptr unsafe.Pointer, fn func(unsafe.Pointer)) bool {
	if b.pos > b.cleanupBudget-int(cleanupRecordSize) {
		return false
	}
	b.cleanupBudget -= int(cleanupRecordSize)
	b.cleanups = append(b.cleanups, cleanupRecord{ptr: ptr, fn: fn})
	return true
}

// runCleanups runs every cleanup thunk registered in this block, newest
// first, and reports how many ran.
func (b *block) runCleanups() int {
	return runCleanups(b.cleanups)
}
