// Package arena implements a region-based bump allocator (a "memory
// arena") for a database runtime.
//
// # Overview
//
// An arena services many short- to medium-lived allocations from a chain
// of large contiguous blocks and reclaims them all together, either at
// Reset (O(number of blocks), blocks retained for reuse where possible)
// or at Close (same, plus the blocks become collectible). This trades
// per-object free for locality and near-zero per-allocation cost.
//
// # Basic Usage
//
//	a := arena.New(arena.WithNormalBlockSize(64 << 10))
//	defer a.Close()
//
//	buf := arena.NewBytes(a, 1024)
//	ptr := arena.New[MyStruct](a)
//	slice := arena.NewSlice[int](a, 100)
//
//	a.Reset() // O(number of blocks) cleanup for arena reuse
//
// # Cleanup registration
//
// Types that need explicit teardown implement Destroyer; New and NewWith
// register a cleanup thunk for such types automatically unless the type
// embeds SkipDestructor. Cleanups run in strict reverse order of
// registration at Reset or Close.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. SafeArena wraps an Arena behind a
// mutex for callers that need to share one arena across goroutines; it
// serializes access rather than parallelizing it.
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("used %d/%d bytes (%.1f%%)\n", m.SpaceUsed, m.SpaceAllocated, m.Utilization*100)
package arena
