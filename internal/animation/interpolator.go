package animation

import (
	"github.com/Faultbox/gimbal/internal/keyframe"
	"github.com/Faultbox/gimbal/pkg/math"
)

// Keyframes is the read side of a keyframe buffer.
type Keyframes interface {
	At(i int) (keyframe.Keyframe, bool)
	IsFull() bool
	Capacity() int
}

// Interpolator blends the keyframes bracketing the clock's current segment.
type Interpolator struct {
	frames Keyframes
	clock  *Clock
}

// NewInterpolator creates an interpolator reading frames at the time kept by clock.
func NewInterpolator(frames Keyframes, clock *Clock) *Interpolator {
	return &Interpolator{
		frames: frames,
		clock:  clock,
	}
}

// bracket returns the keyframes for the current segment and its successor
// together with the blend fraction. ok is false unless the clock is playing
// over a full buffer.
func (ip *Interpolator) bracket() (from, to keyframe.Keyframe, t float32, ok bool) {
	if !ip.clock.IsPlaying() || !ip.frames.IsFull() {
		return from, to, 0, false
	}

	i := ip.clock.Segment()
	j := (i + 1) % ip.frames.Capacity()

	from, okFrom := ip.frames.At(i)
	to, okTo := ip.frames.At(j)
	if !okFrom || !okTo {
		return from, to, 0, false
	}
	return from, to, ip.clock.Blend(), true
}

// Euler returns the linear blend of the bracketing Euler angles.
func (ip *Interpolator) Euler() (math.Euler, bool) {
	from, to, t, ok := ip.bracket()
	if !ok {
		return math.Euler{}, false
	}
	return from.Euler.Lerp(to.Euler, t), true
}

// Quat returns the spherical blend of the bracketing quaternions.
func (ip *Interpolator) Quat() (math.Quat, bool) {
	from, to, t, ok := ip.bracket()
	if !ok {
		return math.Quat{}, false
	}
	return from.Quat.Slerp(to.Quat, t), true
}
