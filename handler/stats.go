package handler

import (
	"sync/atomic"

	"github.com/Laplace825/maxlog/core"
)

// Stats tracks per-level handler counters
type Stats struct {
	written [core.NumLevels]atomic.Uint64
	skipped [core.NumLevels]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten counts a record that reached the sink
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementSkipped counts a record the sink could not write
func (s *Stats) IncrementSkipped(level core.Level) {
	if level.Valid() {
		s.skipped[level].Add(1)
	}
}

// Written returns the written count for a level
func (s *Stats) Written(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// Skipped returns the skipped count for a level
func (s *Stats) Skipped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.skipped[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.skipped[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written map[core.Level]uint64
	Skipped map[core.Level]uint64
}

// TotalWritten sums Written across levels.
func (s Snapshot) TotalWritten() uint64 {
	var n uint64
	for _, v := range s.Written {
		n += v
	}
	return n
}

// TotalSkipped sums Skipped across levels.
func (s Snapshot) TotalSkipped() uint64 {
	var n uint64
	for _, v := range s.Skipped {
		n += v
	}
	return n
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Level]uint64, core.NumLevels),
		Skipped: make(map[core.Level]uint64, core.NumLevels),
	}
	for _, l := range core.Levels() {
		snap.Written[l] = s.Written(l)
		snap.Skipped[l] = s.Skipped(l)
	}
	return snap
}
