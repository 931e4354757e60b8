// Package control turns pointer drags into the live Euler orientation.
package control

import (
	"github.com/Faultbox/gimbal/pkg/math"
)

// DefaultSensitivity is degrees of rotation per pixel of drag.
const DefaultSensitivity = 0.01

// OrientationController accumulates drag deltas into yaw (horizontal) and
// pitch (vertical). Roll is never changed by input.
type OrientationController struct {
	orientation math.Euler
	sensitivity float32

	dragging bool
	last     math.Vec2
}

// NewOrientationController creates a controller at orientation (0, 0, 0).
// A non-positive sensitivity falls back to DefaultSensitivity.
func NewOrientationController(sensitivity float32) *OrientationController {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &OrientationController{sensitivity: sensitivity}
}

// Orientation returns the current Euler orientation.
func (c *OrientationController) Orientation() math.Euler {
	return c.orientation
}

// SetOrientation replaces the current orientation, wrapping each angle.
func (c *OrientationController) SetOrientation(e math.Euler) {
	c.orientation = e.Wrap()
}

// Sensitivity returns degrees per pixel.
func (c *OrientationController) Sensitivity() float32 {
	return c.sensitivity
}

// BeginDrag starts a drag at pointer position pos.
func (c *OrientationController) BeginDrag(pos math.Vec2) {
	c.dragging = true
	c.last = pos
}

// EndDrag stops the current drag.
func (c *OrientationController) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *OrientationController) Dragging() bool {
	return c.dragging
}

// MoveTo feeds a new pointer position. Outside a drag it is ignored.
func (c *OrientationController) MoveTo(pos math.Vec2) {
	if !c.dragging {
		return
	}
	c.Rotate(pos.Sub(c.last))
	c.last = pos
}

// Rotate applies a drag delta in pixels.
func (c *OrientationController) Rotate(delta math.Vec2) {
	c.orientation.Yaw = math.WrapDegrees(c.orientation.Yaw + delta.X*c.sensitivity)
	c.orientation.Pitch = math.WrapDegrees(c.orientation.Pitch + delta.Y*c.sensitivity)
}
