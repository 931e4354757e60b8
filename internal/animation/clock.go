// Package animation drives looping keyframe playback: a wall-clock timer that
// splits one cycle into equal segments, and the interpolation between the two
// keyframes bracketing the current segment.
package animation

import (
	gomath "math"
)

// DefaultDurationMs is the length of one playback cycle.
const DefaultDurationMs = 10000.0

// Mode is the playback state.
type Mode int

const (
	Idle Mode = iota
	Playing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Clock tracks elapsed playback time and the current segment.
// All times are milliseconds from a monotonic source.
type Clock struct {
	mode Mode

	totalMs   float64
	segmentMs float64
	segments  int

	startMs   float64
	elapsedMs float64
	segment   int
}

// NewClock creates an idle clock whose cycle of totalMs is split into
// segments equal parts. Non-positive arguments fall back to defaults.
func NewClock(totalMs float64, segments int) *Clock {
	c := &Clock{}
	c.SetDuration(totalMs)
	c.SetSegments(segments)
	return c
}

// SetDuration changes the cycle length and recomputes the segment length.
func (c *Clock) SetDuration(totalMs float64) {
	if totalMs <= 0 {
		totalMs = DefaultDurationMs
	}
	c.totalMs = totalMs
	c.recompute()
}

// SetSegments changes the number of segments per cycle, normally the
// keyframe capacity, and recomputes the segment length.
func (c *Clock) SetSegments(n int) {
	if n < 1 {
		n = 1
	}
	c.segments = n
	c.recompute()
}

func (c *Clock) recompute() {
	if c.segments == 0 {
		return
	}
	c.segmentMs = c.totalMs / float64(c.segments)
	if c.segment >= c.segments {
		c.segment = c.segments - 1
	}
}

// Start begins playback at nowMs. Returns false if already playing.
func (c *Clock) Start(nowMs float64) bool {
	if c.mode == Playing {
		return false
	}
	c.mode = Playing
	c.startMs = nowMs
	c.elapsedMs = 0
	c.segment = 0
	return true
}

// Stop returns the clock to Idle and clears the timing state.
func (c *Clock) Stop() {
	c.mode = Idle
	c.startMs = 0
	c.elapsedMs = 0
	c.segment = 0
}

// Tick advances playback to nowMs. It does nothing while idle.
//
// Elapsed time stays in [0, total). Past the end of a cycle the clock wraps
// and restarts the cycle, keeping the overshoot so the loop has no seam.
func (c *Clock) Tick(nowMs float64) {
	if c.mode != Playing {
		return
	}

	elapsed := nowMs - c.startMs
	switch {
	case elapsed < 0:
		// Time source went backwards; restart the cycle.
		c.startMs = nowMs
		elapsed = 0
	case elapsed >= c.totalMs:
		elapsed = gomath.Mod(elapsed, c.totalMs)
		c.startMs = nowMs - elapsed
	}
	c.elapsedMs = elapsed

	seg := int(gomath.Floor(elapsed / c.segmentMs))
	if seg >= c.segments {
		seg = c.segments - 1
	}
	c.segment = seg
}

// Mode returns the playback state.
func (c *Clock) Mode() Mode {
	return c.mode
}

// IsPlaying reports whether the clock is in the Playing state.
func (c *Clock) IsPlaying() bool {
	return c.mode == Playing
}

// Elapsed returns milliseconds since the current cycle started.
func (c *Clock) Elapsed() float64 {
	return c.elapsedMs
}

// Segment returns the index of the current segment.
func (c *Clock) Segment() int {
	return c.segment
}

// Segments returns the number of segments per cycle.
func (c *Clock) Segments() int {
	return c.segments
}

// Duration returns the cycle length in milliseconds.
func (c *Clock) Duration() float64 {
	return c.totalMs
}

// SegmentDuration returns the length of one segment in milliseconds.
func (c *Clock) SegmentDuration() float64 {
	return c.segmentMs
}

// Blend returns how far playback is through the current segment,
// elapsed/segmentDuration - segment. It is in [0, 1) up to rounding.
func (c *Clock) Blend() float32 {
	return float32(c.elapsedMs/c.segmentMs - float64(c.segment))
}
