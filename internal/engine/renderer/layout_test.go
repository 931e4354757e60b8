package renderer

import "testing"

func TestComputeLayoutFullHD(t *testing.T) {
	l := ComputeLayout(1920, 1080, 5)

	if l.Euler != (Viewport{X: 0, Y: 216, W: 960, H: 864}) {
		t.Errorf("unexpected euler pane %+v", l.Euler)
	}
	if l.Quaternion != (Viewport{X: 960, Y: 216, W: 960, H: 864}) {
		t.Errorf("unexpected quaternion pane %+v", l.Quaternion)
	}
	if len(l.Filmstrip) != 5 {
		t.Fatalf("expected 5 filmstrip cells, got %d", len(l.Filmstrip))
	}
	for i, c := range l.Filmstrip {
		want := Viewport{X: int32(384 * i), Y: 0, W: 384, H: 216}
		if c != want {
			t.Errorf("cell %d = %+v, want %+v", i, c, want)
		}
	}
}

func TestComputeLayoutCoversWidth(t *testing.T) {
	tests := []struct {
		w, h, slots int
	}{
		{1001, 777, 3},
		{800, 600, 7},
		{333, 100, 1},
	}

	for _, tt := range tests {
		l := ComputeLayout(tt.w, tt.h, tt.slots)

		if l.Euler.W+l.Quaternion.W != int32(tt.w) {
			t.Errorf("%dx%d: panes cover %d, want %d", tt.w, tt.h, l.Euler.W+l.Quaternion.W, tt.w)
		}
		if l.Euler.Y+l.Euler.H != int32(tt.h) {
			t.Errorf("%dx%d: panes should reach the top", tt.w, tt.h)
		}

		var x int32
		for i, c := range l.Filmstrip {
			if c.X != x {
				t.Errorf("%dx%d: cell %d starts at %d, want %d", tt.w, tt.h, i, c.X, x)
			}
			if c.H != l.Euler.Y {
				t.Errorf("%dx%d: cell %d height %d, want %d", tt.w, tt.h, i, c.H, l.Euler.Y)
			}
			x += c.W
		}
		if x != int32(tt.w) {
			t.Errorf("%dx%d: filmstrip covers %d, want %d", tt.w, tt.h, x, tt.w)
		}
	}
}

func TestComputeLayoutDegenerate(t *testing.T) {
	l := ComputeLayout(0, 0, 0)
	if len(l.Filmstrip) != 1 {
		t.Errorf("expected at least one cell, got %d", len(l.Filmstrip))
	}
	if l.Euler.Aspect() != 1 {
		t.Errorf("empty viewport aspect should be 1, got %v", l.Euler.Aspect())
	}
}

func TestViewportAspect(t *testing.T) {
	v := Viewport{W: 384, H: 216}
	if got := v.Aspect(); got < 1.777 || got > 1.778 {
		t.Errorf("expected 16:9 aspect, got %v", got)
	}
}
