package handler

import (
	"sync/atomic"

	"github.com/philipp01105/ntrace/core"
)

// levelCount is the number of slots needed to index every level, NoLevel
// included
const levelCount = int(core.PanicLevel-core.NoLevel) + 1

// Stats tracks dispatch statistics
type Stats struct {
	// Dispatched counts delivered messages, indexed by level offset from NoLevel
	Dispatched [levelCount]atomic.Uint64
	// Discarded counts panic-path messages dropped because no handler was set
	Discarded atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func slot(level core.Level) (int, bool) {
	i := int(level - core.NoLevel)
	return i, i >= 0 && i < levelCount
}

// IncrementDispatched atomically increments the dispatched counter for a level
func (s *Stats) IncrementDispatched(level core.Level) {
	if i, ok := slot(level); ok {
		s.Dispatched[i].Add(1)
	}
}

// IncrementDiscarded atomically increments the discarded counter
func (s *Stats) IncrementDiscarded() {
	s.Discarded.Add(1)
}

// GetDispatched returns the dispatched count for a level
func (s *Stats) GetDispatched(level core.Level) uint64 {
	if i, ok := slot(level); ok {
		return s.Dispatched[i].Load()
	}
	return 0
}

// GetTotalDispatched returns the dispatched count across all levels
func (s *Stats) GetTotalDispatched() uint64 {
	var total uint64
	for i := range s.Dispatched {
		total += s.Dispatched[i].Load()
	}
	return total
}

// GetDiscarded returns the discarded count
func (s *Stats) GetDiscarded() uint64 {
	return s.Discarded.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.Dispatched {
		s.Dispatched[i].Store(0)
	}
	s.Discarded.Store(0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Dispatched map[core.Level]uint64
	Discarded  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Dispatched: make(map[core.Level]uint64, levelCount),
		Discarded:  s.GetDiscarded(),
	}
	for l := core.NoLevel; l <= core.PanicLevel; l++ {
		snap.Dispatched[l] = s.GetDispatched(l)
	}
	return snap
}

// Total returns the number of dispatched messages in the snapshot
func (s Snapshot) Total() uint64 {
	var total uint64
	for _, n := range s.Dispatched {
		total += n
	}
	return total
}
