package monitor

import "time"

// DefaultInterval is how often a new snapshot is due without user input.
const DefaultInterval = 3000 * time.Millisecond

// Scheduler decides when the next snapshot should be taken.
type Scheduler struct {
	Interval time.Duration
	last     time.Time
}

func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{Interval: interval}
}

// Due reports whether a refresh should fire: either the interval has
// elapsed since the last refresh, or manual forces one. NOTE: a true
// result updates the last-refresh time as a side effect, so Due is not
// idempotent across a true result; the caller must also clear its manual
// flag after a true result. Comparison uses time.Time's monotonic reading,
// wall-clock adjustments do not shift the interval.
func (s *Scheduler) Due(now time.Time, manual bool) bool {
	if manual || now.Sub(s.last) >= s.Interval {
		s.last = now
		return true
	}
	return false
}
