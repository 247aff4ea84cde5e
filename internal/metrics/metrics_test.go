package metrics

import "testing"

func TestSnapshotCopiesLocalCounters(t *testing.T) {
	l := &Local{BlockCount: 2, SpaceUsed: 100, AllocationCount: 5}
	s := l.Snapshot()
	if s.BlockCount != 2 || s.SpaceUsed != 100 || s.AllocationCount != 5 {
		t.Errorf("Snapshot() = %+v, want fields copied from Local", s)
	}
}

func TestMergeAccumulatesIntoGlobal(t *testing.T) {
	ResetGlobalForTest()

	Merge(&Local{ArenaCount: 1, SpaceUsed: 10})
	Merge(&Local{ArenaCount: 1, SpaceUsed: 20})

	g := Global()
	if g.ArenaCount != 2 {
		t.Errorf("Global().ArenaCount = %d, want 2", g.ArenaCount)
	}
	if g.SpaceUsed != 30 {
		t.Errorf("Global().SpaceUsed = %d, want 30", g.SpaceUsed)
	}
}

func TestResetGlobalForTestClearsSink(t *testing.T) {
	Merge(&Local{ArenaCount: 1})
	ResetGlobalForTest()

	if g := Global(); g.ArenaCount != 0 {
		t.Errorf("Global().ArenaCount = %d after reset, want 0", g.ArenaCount)
	}
}
