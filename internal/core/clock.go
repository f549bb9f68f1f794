package core

import "time"

// Clock produces the monotonically non-decreasing millisecond timestamps the
// simulation's update contract requires. Timestamps are measured from the
// moment the clock was created, so they stay small and survive wall-clock
// adjustments (time.Since uses the monotonic reading).
type Clock struct {
	start time.Time
}

// NewClock creates a clock starting at zero milliseconds.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// NowMS returns milliseconds elapsed since the clock was created.
func (c *Clock) NowMS() int64 {
	return time.Since(c.start).Milliseconds()
}
