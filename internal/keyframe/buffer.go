// Package keyframe stores the orientation samples captured for playback.
package keyframe

import (
	"github.com/Faultbox/gimbal/pkg/math"
)

// DefaultCapacity is the number of keyframes a buffer holds unless configured otherwise.
const DefaultCapacity = 5

// Keyframe is one captured orientation in both representations.
type Keyframe struct {
	Euler math.Euler
	Quat  math.Quat
}

// Buffer is a fixed-capacity, append-only list of keyframes.
// Slots at or beyond Count are stale and never returned.
type Buffer struct {
	frames []Keyframe
	count  int
}

// NewBuffer creates an empty buffer. Capacities below 1 fall back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		frames: make([]Keyframe, capacity),
	}
}

// Capture stores e and its quaternion form in the next free slot.
// Returns false without touching the buffer when it is already full.
func (b *Buffer) Capture(e math.Euler) bool {
	if b.count >= len(b.frames) {
		return false
	}
	b.frames[b.count] = Keyframe{
		Euler: e,
		Quat:  math.EulerToQuat(e),
	}
	b.count++
	return true
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	clear(b.frames)
	b.count = 0
}

// IsFull reports whether every slot holds a captured keyframe.
func (b *Buffer) IsFull() bool {
	return b.count == len(b.frames)
}

// Count returns the number of captured keyframes.
func (b *Buffer) Count() int {
	return b.count
}

// Capacity returns the number of slots.
func (b *Buffer) Capacity() int {
	return len(b.frames)
}

// At returns keyframe i. ok is false when i is not a captured slot.
func (b *Buffer) At(i int) (Keyframe, bool) {
	if i < 0 || i >= b.count {
		return Keyframe{}, false
	}
	return b.frames[i], true
}

// Keyframes returns a copy of the captured keyframes in capture order.
func (b *Buffer) Keyframes() []Keyframe {
	out := make([]Keyframe, b.count)
	copy(out, b.frames[:b.count])
	return out
}
