// Package camera provides the demo's orbit camera with eased scroll zoom.
package camera

import (
	gomath "math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/gimbal/pkg/math"
)

// Config holds orbit camera settings. Angles are in degrees.
type Config struct {
	Distance    float32
	MinDistance float32
	MaxDistance float32
	FOVDegrees  float32
	ZoomStep    float32 // fraction of the distance per wheel notch
	ZoomEaseMs  float32 // 0 applies zoom immediately
	Near, Far   float32
}

// DefaultConfig returns the demo camera: 60 units out on +Z with a 30 degree field of view.
func DefaultConfig() Config {
	return Config{
		Distance:    60,
		MinDistance: 15,
		MaxDistance: 300,
		FOVDegrees:  30,
		ZoomStep:    0.1,
		ZoomEaseMs:  150,
		Near:        0.1,
		Far:         1000,
	}
}

// OrbitCamera looks at a center point from a distance on a sphere around it.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	distance  float32
	RotationX float32 // elevation, radians
	RotationY float32 // azimuth, radians

	cfg  Config
	zoom *gween.Tween
	goal float32
}

// NewOrbitCamera creates a camera from cfg. Zero Near/Far fall back to the defaults.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	def := DefaultConfig()
	if cfg.Near <= 0 {
		cfg.Near = def.Near
	}
	if cfg.Far <= cfg.Near {
		cfg.Far = def.Far
	}
	c := &OrbitCamera{cfg: cfg}
	c.distance = c.clamp(cfg.Distance)
	c.goal = c.distance
	return c
}

// Distance returns the current distance from the center.
func (c *OrbitCamera) Distance() float32 {
	return c.distance
}

// TargetDistance returns the distance the camera is easing toward.
func (c *OrbitCamera) TargetDistance() float32 {
	return c.goal
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	rx := float64(c.RotationX)
	ry := float64(c.RotationY)
	return math.Vec3{
		X: c.Center.X + c.distance*float32(gomath.Cos(rx)*gomath.Sin(ry)),
		Y: c.Center.Y + c.distance*float32(gomath.Sin(rx)),
		Z: c.Center.Z + c.distance*float32(gomath.Cos(rx)*gomath.Cos(ry)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.cfg.FOVDegrees), aspect, c.cfg.Near, c.cfg.Far)
}

// HandleZoom moves toward or away from the center by ZoomStep per notch.
// Positive notches zoom in.
func (c *OrbitCamera) HandleZoom(notches float32) {
	if notches == 0 {
		return
	}
	scale := float32(gomath.Pow(float64(1-c.cfg.ZoomStep), float64(notches)))
	c.goal = c.clamp(c.goal * scale)

	if c.cfg.ZoomEaseMs <= 0 {
		c.distance = c.goal
		c.zoom = nil
		return
	}
	c.zoom = gween.New(c.distance, c.goal, c.cfg.ZoomEaseMs, ease.OutCubic)
}

// Update advances the zoom easing by dtMs milliseconds.
func (c *OrbitCamera) Update(dtMs float32) {
	if c.zoom == nil {
		return
	}
	d, done := c.zoom.Update(dtMs)
	c.distance = d
	if done {
		c.distance = c.goal
		c.zoom = nil
	}
}

// Zooming reports whether a zoom ease is in progress.
func (c *OrbitCamera) Zooming() bool {
	return c.zoom != nil
}

func (c *OrbitCamera) clamp(d float32) float32 {
	if d < c.cfg.MinDistance {
		return c.cfg.MinDistance
	}
	if c.cfg.MaxDistance > 0 && d > c.cfg.MaxDistance {
		return c.cfg.MaxDistance
	}
	return d
}
