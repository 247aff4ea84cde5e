// Package metrics holds the counters an arena accumulates over its
// lifetime and the process-wide sink those counters merge into when an
// arena is closed.
package metrics

import "sync/atomic"

// Local is the set of counters a single arena owns for its own lifetime.
// An arena is single-owner and single-goroutine, so Local needs no
// synchronization of its own — only the merge into Global crosses a
// concurrency boundary.
type Local struct {
	ArenaCount      int64
	BlockCount      int64
	SpaceAllocated  int64
	SpaceUsed       int64
	SpaceWasted     int64
	AllocationCount int64
	ResetCount      int64
	CleanupCount    int64
}

// Snapshot is a point-in-time copy of a Local (or the Global sink).
type Snapshot struct {
	ArenaCount      int64
	BlockCount      int64
	SpaceAllocated  int64
	SpaceUsed       int64
	SpaceWasted     int64
	AllocationCount int64
	ResetCount      int64
	CleanupCount    int64
}

// Snapshot returns a copy of l's current counters.
func (l *Local) Snapshot() Snapshot {
	return Snapshot{
		ArenaCount:      l.ArenaCount,
		BlockCount:      l.BlockCount,
		SpaceAllocated:  l.SpaceAllocated,
		SpaceUsed:       l.SpaceUsed,
		SpaceWasted:     l.SpaceWasted,
		AllocationCount: l.AllocationCount,
		ResetCount:      l.ResetCount,
		CleanupCount:    l.CleanupCount,
	}
}

// sink is the process-wide aggregate. All fields are updated with relaxed
// atomic fetch-add; readers accept an eventually consistent view, since
// live arenas have not merged their Local counters yet.
type sink struct {
	arenaCount      atomic.Int64
	blockCount      atomic.Int64
	spaceAllocated  atomic.Int64
	spaceUsed       atomic.Int64
	spaceWasted     atomic.Int64
	allocationCount atomic.Int64
	resetCount      atomic.Int64
	cleanupCount    atomic.Int64
}

var global sink

// Merge accumulates l's counters into the process-wide sink. Arenas call
// this once, from Close.
func Merge(l *Local) {
	global.arenaCount.Add(l.ArenaCount)
	global.blockCount.Add(l.BlockCount)
	global.spaceAllocated.Add(l.SpaceAllocated)
	global.spaceUsed.Add(l.SpaceUsed)
	global.spaceWasted.Add(l.SpaceWasted)
	global.allocationCount.Add(l.AllocationCount)
	global.resetCount.Add(l.ResetCount)
	global.cleanupCount.Add(l.CleanupCount)
}

// Global returns an approximate snapshot of the process-wide sink.
func Global() Snapshot {
	return Snapshot{
		ArenaCount:      global.arenaCount.Load(),
		BlockCount:      global.blockCount.Load(),
		SpaceAllocated:  global.spaceAllocated.Load(),
		SpaceUsed:       global.spaceUsed.Load(),
		SpaceWasted:     global.spaceWasted.Load(),
		AllocationCount: global.allocationCount.Load(),
		ResetCount:      global.resetCount.Load(),
		CleanupCount:    global.cleanupCount.Load(),
	}
}

// ResetGlobalForTest clears the process-wide sink. It exists so tests in
// this module's test suite can assert on Global() without interference
// from other packages' arenas in the same test binary.
func ResetGlobalForTest() {
	global = sink{}
}
