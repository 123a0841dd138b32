package app

import (
	"sync/atomic"
	"time"
)

// Stats counts what the run loop has processed.
// It is safe for concurrent use.
type Stats struct {
	ticks     atomic.Uint64
	keys      atomic.Uint64
	fired     atomic.Uint64
	unmatched atomic.Uint64
	reloads   atomic.Uint64

	startTime time.Time
}

// NewStats creates a new stats tracker.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordTick records a timer tick.
func (s *Stats) RecordTick() { s.ticks.Add(1) }

// RecordKey records a key press and whether it fired or missed.
func (s *Stats) RecordKey(fired, unmatched bool) {
	s.keys.Add(1)
	if fired {
		s.fired.Add(1)
	}
	if unmatched {
		s.unmatched.Add(1)
	}
}

// RecordReload records an applied config reload.
func (s *Stats) RecordReload() { s.reloads.Add(1) }

// Snapshot returns a snapshot of current stats.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Ticks:     s.ticks.Load(),
		Keys:      s.keys.Load(),
		Fired:     s.fired.Load(),
		Unmatched: s.unmatched.Load(),
		Reloads:   s.reloads.Load(),
		Uptime:    time.Since(s.startTime),
	}
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Ticks     uint64
	Keys      uint64
	Fired     uint64
	Unmatched uint64
	Reloads   uint64
	Uptime    time.Duration
}

// Fields returns the snapshot as logger fields.
func (s StatsSnapshot) Fields() map[string]any {
	return map[string]any{
		"ticks":     s.Ticks,
		"keys":      s.Keys,
		"fired":     s.Fired,
		"unmatched": s.Unmatched,
		"reloads":   s.Reloads,
		"uptime":    s.Uptime.Round(time.Millisecond).String(),
	}
}
