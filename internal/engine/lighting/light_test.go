package lighting

import (
	gomath "math"
	"testing"
)

func TestDemoLights(t *testing.T) {
	s := DemoLights()
	if s.Len() != 2 {
		t.Fatalf("expected 2 lights, got %d", s.Len())
	}
	if !s.On() {
		t.Error("lights should start switched on")
	}

	ls := s.Lights()
	if ls[0].IsSpot() {
		t.Error("first light should be a point light")
	}
	if !ls[1].IsSpot() {
		t.Error("second light should be a spotlight")
	}
}

func TestAddBounded(t *testing.T) {
	s := NewLightSet()
	for i := 0; i < MaxLights; i++ {
		if !s.Add(Light{}) {
			t.Fatalf("add %d should succeed", i)
		}
	}
	if s.Add(Light{}) {
		t.Error("add beyond MaxLights should fail")
	}
	if s.Len() != MaxLights {
		t.Errorf("expected %d lights, got %d", MaxLights, s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty set after Clear, got %d", s.Len())
	}
}

func TestToggle(t *testing.T) {
	s := DemoLights()

	if s.Toggle() {
		t.Error("first toggle should switch off")
	}
	if s.ActiveCount() != 0 {
		t.Errorf("expected 0 active lights while off, got %d", s.ActiveCount())
	}
	if !s.Toggle() {
		t.Error("second toggle should switch on")
	}
	if s.ActiveCount() != 2 {
		t.Errorf("expected 2 active lights, got %d", s.ActiveCount())
	}

	s.SetOn(false)
	if s.On() {
		t.Error("SetOn(false) should switch off")
	}
}

func TestFlatten(t *testing.T) {
	s := DemoLights()

	pos := s.Positions()
	if len(pos) != MaxLights*4 {
		t.Fatalf("expected %d position values, got %d", MaxLights*4, len(pos))
	}
	want := []float32{10, 150, 10, 1, 7, 100, 7, 1}
	for i, v := range want {
		if pos[i] != v {
			t.Errorf("positions[%d] = %v, want %v", i, pos[i], v)
		}
	}
	for i := 8; i < len(pos); i++ {
		if pos[i] != 0 {
			t.Errorf("unused slot value positions[%d] = %v, want 0", i, pos[i])
		}
	}

	if d := s.Diffuses(); d[4] != 0 || d[5] != 0.47 || d[6] != 0.75 {
		t.Errorf("unexpected spotlight diffuse %v", d[4:8])
	}
	if dirs := s.SpotDirections(); len(dirs) != MaxLights*3 || dirs[4] != -1 {
		t.Errorf("unexpected spot directions %v", dirs)
	}
	if exps := s.SpotExponents(); exps[1] != 128 {
		t.Errorf("expected spot exponent 128, got %v", exps[1])
	}
}

func TestSpotCosCutoffs(t *testing.T) {
	s := DemoLights()
	cut := s.SpotCosCutoffs()

	if cut[0] != -1 {
		t.Errorf("point light should have cutoff -1, got %v", cut[0])
	}
	want := gomath.Cos(7 * gomath.Pi / 180)
	if gomath.Abs(float64(cut[1])-want) > 1e-6 {
		t.Errorf("expected cos(7deg) = %v, got %v", want, cut[1])
	}
	if cut[2] != -1 || cut[3] != -1 {
		t.Errorf("unused slots should be -1, got %v", cut[2:])
	}
}
