package math

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var sampleAngles = []float32{0, 12.3, 30, 45, 90, 135, 180, 270, 359.5}

func TestEulerToQuatMatchesMatrix(t *testing.T) {
	for _, p := range sampleAngles {
		for _, y := range sampleAngles {
			for _, r := range sampleAngles {
				e := Euler{Pitch: p, Yaw: y, Roll: r}
				fromQuat := EulerToQuat(e).ToMat4()
				direct := EulerToMat4(e)
				if !fromQuat.ApproxEqual(direct, 0.0001) {
					t.Fatalf("%+v: quaternion path %v != matrix path %v", e, fromQuat, direct)
				}
			}
		}
	}
}

func TestEulerToQuatIsUnit(t *testing.T) {
	for _, a := range sampleAngles {
		q := EulerToQuat(Euler{Pitch: a, Yaw: a * 2, Roll: 360 - a})
		if l := q.Length(); math.Abs(float64(l-1)) > 0.0001 {
			t.Errorf("EulerToQuat(%v) length = %v, want 1", a, l)
		}
	}
}

func TestEulerToMat4MatchesReference(t *testing.T) {
	// Independent check against mathgl: Rz * Ry * Rx.
	for _, p := range sampleAngles {
		for _, y := range sampleAngles {
			e := Euler{Pitch: p, Yaw: y, Roll: p + y}
			ref := mgl32.HomogRotate3DZ(mgl32.DegToRad(e.Roll)).
				Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(e.Yaw))).
				Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(e.Pitch)))

			got := EulerToMat4(e)
			if !got.ApproxEqual(Mat4(ref), 0.0001) {
				t.Fatalf("%+v: got %v, want %v", e, got, ref)
			}
		}
	}
}

func TestEulerCompositionOrder(t *testing.T) {
	// Pitch 90 then yaw 90: +Y goes to +Z under the pitch, then to +X under the yaw.
	m := EulerToMat4(Euler{Pitch: 90, Yaw: 90})
	got := m.TransformDirection([3]float32{0, 1, 0})

	if abs(got[0]-1) > 0.0001 || abs(got[1]) > 0.0001 || abs(got[2]) > 0.0001 {
		t.Errorf("direction = %v, want (1, 0, 0)", got)
	}
}

func TestEulerGimbalLock(t *testing.T) {
	// At yaw 90 pitch and roll act about the same axis, so only their
	// difference matters.
	a := EulerToMat4(Euler{Pitch: 30, Yaw: 90, Roll: 0})
	b := EulerToMat4(Euler{Pitch: 60, Yaw: 90, Roll: 30})

	if !a.ApproxEqual(b, 0.0001) {
		t.Errorf("expected gimbal-locked orientations to coincide:\n%v\n%v", a, b)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{361, 1},
		{725, 5},
		{-1, 359},
		{-360, 0},
		{-0.00001, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			got := WrapDegrees(tt.in)
			if got < 0 || got >= 360 {
				t.Fatalf("WrapDegrees(%v) = %v, outside [0, 360)", tt.in, got)
			}
			if abs(got-tt.want) > 0.001 && abs(got-tt.want) < 359.99 {
				t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEulerLerp(t *testing.T) {
	a := Euler{Pitch: 0, Yaw: 10, Roll: 350}
	b := Euler{Pitch: 20, Yaw: 30, Roll: 10}

	got := a.Lerp(b, 0.5)
	want := Euler{Pitch: 10, Yaw: 20, Roll: 180}
	if abs(got.Pitch-want.Pitch) > 0.0001 || abs(got.Yaw-want.Yaw) > 0.0001 || abs(got.Roll-want.Roll) > 0.0001 {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %+v, want %+v", got, a)
	}
}
