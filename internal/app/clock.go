package app

import "time"

// Clock is a monotonic millisecond clock starting at zero.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// NowMs returns milliseconds since the clock started.
func (c *Clock) NowMs() float64 {
	return float64(c.now().Sub(c.start)) / float64(time.Millisecond)
}
