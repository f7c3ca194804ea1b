package sink

import (
	"sync/atomic"

	"github.com/Philipp01105/kvlog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log entry when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log entry when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy drops anything below ERROR when the queue is full
// and blocks (with timeout) for ERROR.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	policy := make(map[core.Level]OverflowPolicy, len(core.Levels()))
	for _, l := range core.Levels() {
		policy[l] = DropNewest
	}
	policy[core.ErrorLevel] = Block
	return policy
}

const numLevels = int(core.SevereLevel) + 1

// Stats tracks console sink statistics
type Stats struct {
	dropped   [numLevels]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if level >= 0 && int(level) < numLevels {
		s.dropped[level].Add(1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a level
func (s *Stats) Dropped(level core.Level) uint64 {
	if level < 0 || int(level) >= numLevels {
		return 0
	}
	return s.dropped[level].Load()
}

// TotalDropped returns the total dropped across all levels
func (s *Stats) TotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// Snapshot returns a snapshot of current statistics
func (s *Stats) Snapshot() Snapshot {
	dropped := make(map[core.Level]uint64, numLevels)
	for _, l := range core.Levels() {
		dropped[l] = s.Dropped(l)
	}
	return Snapshot{
		DroppedTotal:   dropped,
		BlockedTotal:   s.blocked.Load(),
		ProcessedTotal: s.processed.Load(),
	}
}
