package arena

import "github.com/clapdb/arena/internal/metrics"

// ArenaMetrics is a point-in-time snapshot of a single arena's counters,
// matching the teacher package's Metrics() convenience: most callers just
// want one struct to log or export rather than one method call per
// counter.
type ArenaMetrics struct {
	BlockCount      int
	SpaceAllocated  int
	SpaceUsed       int
	SpaceWasted     int
	AllocationCount int
	ResetCount      int
	CleanupCount    int
	Utilization     float64 // SpaceUsed / SpaceAllocated, 0 if SpaceAllocated == 0
}

// Metrics returns a snapshot of a's current counters.
func (a *Arena) Metrics() ArenaMetrics {
	s := a.local.Snapshot()
	m := ArenaMetrics{
		BlockCount:      int(s.BlockCount),
		SpaceAllocated:  int(s.SpaceAllocated),
		SpaceUsed:       int(s.SpaceUsed),
		SpaceWasted:     int(s.SpaceWasted),
		AllocationCount: int(s.AllocationCount),
		ResetCount:      int(s.ResetCount),
		CleanupCount:    int(s.CleanupCount),
	}
	if m.SpaceAllocated > 0 {
		m.Utilization = float64(m.SpaceUsed) / float64(m.SpaceAllocated)
	}
	return m
}

// GlobalMetrics is a point-in-time snapshot of the process-wide sink
// every arena merges into when it closes.
type GlobalMetrics struct {
	ArenaCount      int
	BlockCount      int
	SpaceAllocated  int
	SpaceUsed       int
	SpaceWasted     int
	AllocationCount int
	ResetCount      int
	CleanupCount    int
}

// Global returns an approximate snapshot of the process-wide metrics
// sink. Arenas that have not yet called Close have not merged their
// counters in, so this view is eventually consistent, not exact.
func Global() GlobalMetrics {
	s := metrics.Global()
	return GlobalMetrics{
		ArenaCount:      int(s.ArenaCount),
		BlockCount:      int(s.BlockCount),
		SpaceAllocated:  int(s.SpaceAllocated),
		SpaceUsed:       int(s.SpaceUsed),
		SpaceWasted:     int(s.SpaceWasted),
		AllocationCount: int(s.AllocationCount),
		ResetCount:      int(s.ResetCount),
		CleanupCount:    int(s.CleanupCount),
	}
}
