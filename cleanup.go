package arena

import "unsafe"

// cleanupRecord pairs an arena-owned pointer with the thunk that knows how
// to invoke the concrete type's destructor for it. Records are appended to
// a block's registry in registration order and walked back-to-front on
// teardown, which is the slice-backed equivalent of the original design's
// "indexed downward from size" record area.
type cleanupRecord struct {
	ptr unsafe.Pointer
	fn  func(unsafe.Pointer)
}

// cleanupRecordSize is the logical byte cost charged against a block's
// cleanup budget for each registered record. cleanupRecord itself lives on
// the Go heap as an element of the block's cleanups slice, not inside buf, but the
// budget accounting in block.go still reserves this many bytes so the
// growth-policy math in the arena core matches the original design's
// byte-budget reasoning exactly.
const cleanupRecordSize = unsafe.Sizeof(cleanupRecord{})

// runCleanups invokes every recorded thunk in the reverse of registration order —
// newest first — so that cleanups across a whole arena execute in strict
// reverse order of registration once the arena core reverse-walks blocks.
func runCleanups(records []cleanupRecord) (ran int) {
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.fn != nil {
			r.fn(r.ptr)
		}
		ran++
	}
	return ran
}
