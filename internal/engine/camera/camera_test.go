package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/gimbal/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestDefaultPosition(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	pos := c.Position()
	if !near(pos.X, 0, 1e-4) || !near(pos.Y, 0, 1e-4) || !near(pos.Z, 60, 1e-4) {
		t.Errorf("expected camera at (0,0,60), got %+v", pos)
	}
}

func TestViewMatrixMovesCenterInFront(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	p := c.ViewMatrix().TransformPoint([3]float32{0, 0, 0})
	if !near(p[0], 0, 1e-4) || !near(p[1], 0, 1e-4) || !near(p[2], -60, 1e-4) {
		t.Errorf("expected origin at (0,0,-60) in view space, got %v", p)
	}
}

func TestProjectionAspect(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	wide := c.ProjectionMatrix(2)
	square := c.ProjectionMatrix(1)
	if !near(wide[0]*2, square[0], 1e-5) {
		t.Errorf("x scale should halve when aspect doubles: %v vs %v", wide[0], square[0])
	}
	if c.ProjectionMatrix(0) != square {
		t.Error("non-positive aspect should fall back to 1")
	}
}

func TestZoomImmediate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomEaseMs = 0
	c := NewOrbitCamera(cfg)

	c.HandleZoom(1)
	if !near(c.Distance(), 54, 1e-3) {
		t.Errorf("expected distance 54 after one notch in, got %v", c.Distance())
	}
	if c.Zooming() {
		t.Error("zoom without easing should finish immediately")
	}

	c.HandleZoom(-1)
	if !near(c.Distance(), 54/0.9, 1e-3) {
		t.Errorf("expected distance 60 after one notch out, got %v", c.Distance())
	}
}

func TestZoomEases(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	c.HandleZoom(2)
	goal := c.TargetDistance()
	if !near(goal, 60*0.81, 1e-3) {
		t.Fatalf("expected goal %v, got %v", 60*0.81, goal)
	}
	if c.Distance() != 60 {
		t.Errorf("distance should not jump before Update, got %v", c.Distance())
	}

	c.Update(75)
	mid := c.Distance()
	if mid >= 60 || mid <= goal {
		t.Errorf("halfway distance %v should lie between %v and 60", mid, goal)
	}
	if !c.Zooming() {
		t.Error("expected zoom still in progress")
	}

	c.Update(100)
	if c.Distance() != goal {
		t.Errorf("expected distance %v after easing, got %v", goal, c.Distance())
	}
	if c.Zooming() {
		t.Error("zoom should be finished")
	}
}

func TestZoomClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomEaseMs = 0
	c := NewOrbitCamera(cfg)

	c.HandleZoom(100)
	if c.Distance() != cfg.MinDistance {
		t.Errorf("expected min distance %v, got %v", cfg.MinDistance, c.Distance())
	}
	c.HandleZoom(-100)
	if c.Distance() != cfg.MaxDistance {
		t.Errorf("expected max distance %v, got %v", cfg.MaxDistance, c.Distance())
	}
}

func TestOrbitAngles(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	c.RotationY = math.Radians(90)
	pos := c.Position()
	if !near(pos.X, 60, 1e-3) || !near(pos.Z, 0, 1e-3) {
		t.Errorf("expected camera on +X, got %+v", pos)
	}
}
