// Package session owns the orientation demo state: the live Euler
// orientation, the captured keyframes and the playback clock. Render code
// reads it only through the query methods.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/gimbal/internal/animation"
	"github.com/Faultbox/gimbal/internal/control"
	"github.com/Faultbox/gimbal/internal/keyframe"
	"github.com/Faultbox/gimbal/pkg/math"
)

// Options configures a session.
type Options struct {
	KeyframeCapacity int
	DurationMs       float64
	DragSensitivity  float32
}

// DefaultOptions returns the stock demo settings: five keyframes over ten seconds.
func DefaultOptions() Options {
	return Options{
		KeyframeCapacity: keyframe.DefaultCapacity,
		DurationMs:       animation.DefaultDurationMs,
		DragSensitivity:  control.DefaultSensitivity,
	}
}

// Slot is one filmstrip cell.
type Slot struct {
	Index     int
	Captured  bool
	Active    bool // current playback segment starts here
	Transform math.Mat4
}

// Status is a snapshot of the session for logging and the window title.
type Status struct {
	Mode        animation.Mode
	Captured    int
	Capacity    int
	ElapsedMs   float64
	Segment     int
	Blend       float32
	Orientation math.Euler
}

// Session is the single owner of the demo's mutable state.
type Session struct {
	frames  *keyframe.Buffer
	clock   *animation.Clock
	interp  *animation.Interpolator
	control *control.OrientationController
	log     *zap.Logger
}

// New creates a session. A nil logger discards output.
func New(opts Options, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	frames := keyframe.NewBuffer(opts.KeyframeCapacity)
	clock := animation.NewClock(opts.DurationMs, frames.Capacity())

	return &Session{
		frames:  frames,
		clock:   clock,
		interp:  animation.NewInterpolator(frames, clock),
		control: control.NewOrientationController(opts.DragSensitivity),
		log:     log,
	}
}

// Capture snapshots the current orientation into the next keyframe slot.
// Returns false when the buffer is already full.
func (s *Session) Capture() bool {
	e := s.control.Orientation()
	if !s.frames.Capture(e) {
		s.log.Debug("capture ignored, keyframes full",
			zap.Int("capacity", s.frames.Capacity()),
		)
		return false
	}
	s.log.Info("keyframe captured",
		zap.Int("index", s.frames.Count()-1),
		zap.Float32("pitch", e.Pitch),
		zap.Float32("yaw", e.Yaw),
		zap.Float32("roll", e.Roll),
	)
	return true
}

// Reset clears all keyframes and stops playback, since the clock would
// otherwise index slots that no longer hold keyframes.
func (s *Session) Reset() {
	wasPlaying := s.clock.IsPlaying()
	s.frames.Reset()
	s.clock.Stop()
	s.log.Info("keyframes reset", zap.Bool("stopped_playback", wasPlaying))
}

// Start begins looping playback at nowMs. It only starts from idle with a
// full keyframe buffer.
func (s *Session) Start(nowMs float64) bool {
	if !s.frames.IsFull() {
		s.log.Debug("start ignored, keyframes not full",
			zap.Int("captured", s.frames.Count()),
			zap.Int("capacity", s.frames.Capacity()),
		)
		return false
	}
	if !s.clock.Start(nowMs) {
		return false
	}
	s.log.Info("playback started",
		zap.Float64("duration_ms", s.clock.Duration()),
		zap.Int("segments", s.clock.Segments()),
	)
	return true
}

// Tick advances playback. While playing, the live orientation follows the
// Euler interpolation.
func (s *Session) Tick(nowMs float64) {
	s.clock.Tick(nowMs)
	if e, ok := s.interp.Euler(); ok {
		s.control.SetOrientation(e)
	}
}

// IsPlaying reports whether playback is running.
func (s *Session) IsPlaying() bool {
	return s.clock.IsPlaying()
}

// IsFull reports whether every keyframe slot has been captured.
func (s *Session) IsFull() bool {
	return s.frames.IsFull()
}

// Orientation returns the live Euler orientation.
func (s *Session) Orientation() math.Euler {
	return s.control.Orientation()
}

// BeginDrag starts rotating the model from pointer position pos.
func (s *Session) BeginDrag(pos math.Vec2) {
	s.control.BeginDrag(pos)
}

// DragTo moves the pointer during a drag.
func (s *Session) DragTo(pos math.Vec2) {
	s.control.MoveTo(pos)
}

// EndDrag finishes the drag.
func (s *Session) EndDrag() {
	s.control.EndDrag()
}

// EulerTransform is the world transform for the Euler pane.
func (s *Session) EulerTransform() math.Mat4 {
	if e, ok := s.interp.Euler(); ok {
		return math.EulerToMat4(e)
	}
	return math.EulerToMat4(s.control.Orientation())
}

// QuaternionTransform is the world transform for the quaternion pane.
// When idle it is the same matrix as EulerTransform.
func (s *Session) QuaternionTransform() math.Mat4 {
	if q, ok := s.interp.Quat(); ok {
		return q.ToMat4()
	}
	return math.EulerToMat4(s.control.Orientation())
}

// Filmstrip returns one slot per keyframe capacity. Captured slots carry the
// keyframe's quaternion transform.
func (s *Session) Filmstrip() []Slot {
	slots := make([]Slot, s.frames.Capacity())
	playing := s.clock.IsPlaying() && s.frames.IsFull()
	for i := range slots {
		slots[i].Index = i
		k, ok := s.frames.At(i)
		if !ok {
			continue
		}
		slots[i].Captured = true
		slots[i].Transform = k.Quat.ToMat4()
		slots[i].Active = playing && i == s.clock.Segment()
	}
	return slots
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	return Status{
		Mode:        s.clock.Mode(),
		Captured:    s.frames.Count(),
		Capacity:    s.frames.Capacity(),
		ElapsedMs:   s.clock.Elapsed(),
		Segment:     s.clock.Segment(),
		Blend:       s.clock.Blend(),
		Orientation: s.control.Orientation(),
	}
}

// HandleAction applies the keyframe actions (capture, start, reset) and
// reports whether a was one of them. Other actions belong to the caller.
func (s *Session) HandleAction(a Action, nowMs float64) bool {
	switch a {
	case ActionCapture:
		s.Capture()
	case ActionStart:
		s.Start(nowMs)
	case ActionReset:
		s.Reset()
	default:
		return false
	}
	return true
}
