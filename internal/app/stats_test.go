package app

import "testing"

func TestStats(t *testing.T) {
	s := NewStats()
	s.RecordTick()
	s.RecordTick()
	s.RecordKey(true, false)
	s.RecordKey(false, true)
	s.RecordKey(false, false)
	s.RecordReload()

	snap := s.Snapshot()
	want := StatsSnapshot{Ticks: 2, Keys: 3, Fired: 1, Unmatched: 1, Reloads: 1}
	snap.Uptime = 0
	if snap != want {
		t.Errorf("Snapshot() = %+v, want %+v", snap, want)
	}

	fields := snap.Fields()
	if fields["keys"] != uint64(3) {
		t.Errorf("fields[keys] = %v, want 3", fields["keys"])
	}
	if _, ok := fields["uptime"]; !ok {
		t.Error("fields missing uptime")
	}
}
