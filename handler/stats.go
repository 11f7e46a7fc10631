package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// DroppedTotal counts tables dropped because the async queue was full
	DroppedTotal uint64
	// ProcessedTotal counts tables written to the sink
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	DroppedTotal   uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal:   atomic.LoadUint64(&s.DroppedTotal),
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
}
