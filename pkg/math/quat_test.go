package math

import (
	"math"
	"testing"
)

func quatNear(a, b Quat, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps && abs(a.W-b.W) <= eps
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	if math.Abs(float64(n.Length()-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", n.Length())
	}

	if z := (Quat{}).Normalize(); z != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", z)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		q0, q1 Quat
	}{
		{"identity to 90 about Y", QuatIdentity(), QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))},
		{"30 about X to 120 about Z", QuatFromAxisAngle(Vec3{X: 1}, Radians(30)), QuatFromAxisAngle(Vec3{Z: 1}, Radians(120))},
		{"nearly identical", QuatIdentity(), QuatFromAxisAngle(Vec3{Y: 1}, Radians(0.5))},
		{"euler keyframes", EulerToQuat(Euler{Pitch: 10, Yaw: 40}), EulerToQuat(Euler{Yaw: 80, Roll: 20})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q0.Slerp(tt.q1, 0); !quatNear(got, tt.q0, 0.0001) {
				t.Errorf("Slerp(t=0) = %v, want %v", got, tt.q0)
			}
			if got := tt.q0.Slerp(tt.q1, 1); !quatNear(got, tt.q1, 0.0001) {
				t.Errorf("Slerp(t=1) = %v, want %v", got, tt.q1)
			}
		})
	}
}

func TestQuatSlerpSelf(t *testing.T) {
	q := EulerToQuat(Euler{Pitch: 15, Yaw: 200, Roll: 33})
	for _, tt := range []float32{-0.25, 0, 0.3, 0.5, 0.99, 1, 1.2} {
		if got := q.Slerp(q, tt); !quatNear(got, q, 0.0001) {
			t.Errorf("Slerp(q, q, %v) = %v, want %v", tt, got, q)
		}
	}
}

func TestQuatSlerpHalfway(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// For a 90 degree rotation, halfway is 45 degrees
	result := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(result.W-expectedW)) > 0.001 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result.W)
	}
}

func TestQuatSlerpExtrapolates(t *testing.T) {
	q0 := QuatIdentity()
	q1 := QuatFromAxisAngle(Vec3{Y: 1}, Radians(40))

	got := q0.Slerp(q1, 1.5)
	want := QuatFromAxisAngle(Vec3{Y: 1}, Radians(60))
	if !got.SameRotation(want, 0.0001) {
		t.Errorf("Slerp(t=1.5) = %v, want %v", got, want)
	}

	got = q0.Slerp(q1, -0.5)
	want = QuatFromAxisAngle(Vec3{Y: 1}, Radians(-20))
	if !got.SameRotation(want, 0.0001) {
		t.Errorf("Slerp(t=-0.5) = %v, want %v", got, want)
	}
}

func TestQuatSlerpAntipodal(t *testing.T) {
	q := EulerToQuat(Euler{Pitch: 70, Yaw: 10})
	got := q.Slerp(q.Negate(), 0.5)

	if math.IsNaN(float64(got.W)) {
		t.Fatal("Slerp of antipodal quaternions produced NaN")
	}
	if !got.SameRotation(q, 0.0001) {
		t.Errorf("Slerp(q, -q, 0.5) = %v, want rotation of %v", got, q)
	}
}

func TestQuatSlerpShortestPath(t *testing.T) {
	q0 := QuatFromAxisAngle(Vec3{Z: 1}, Radians(10))
	q1 := QuatFromAxisAngle(Vec3{Z: 1}, Radians(350)) // -10 degrees, opposite hemisphere

	got := q0.Slerp(q1, 0.5)
	if !got.SameRotation(QuatIdentity(), 0.0001) {
		t.Errorf("Slerp should pass through identity on the short arc, got %v", got)
	}
}

func TestQuatSlerpUnitLength(t *testing.T) {
	q0 := EulerToQuat(Euler{Pitch: 5, Yaw: 100, Roll: 250})
	q1 := EulerToQuat(Euler{Pitch: 300, Yaw: 20, Roll: 45})
	for i := -5; i <= 15; i++ {
		got := q0.Slerp(q1, float32(i)/10)
		if l := got.Length(); math.Abs(float64(l-1)) > 0.0001 {
			t.Errorf("Slerp(t=%v) length = %v, want 1", float32(i)/10, l)
		}
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesAxisRotations(t *testing.T) {
	angle := Radians(37)
	tests := []struct {
		name string
		axis Vec3
		want Mat4
	}{
		{"X", Vec3{X: 1}, RotateX(angle)},
		{"Y", Vec3{Y: 1}, RotateY(angle)},
		{"Z", Vec3{Z: 1}, RotateZ(angle)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromAxisAngle(tt.axis, angle).ToMat4()
			if !got.ApproxEqual(tt.want, 0.0001) {
				t.Errorf("ToMat4() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuatToMat4NormalizesInput(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 1}, Radians(60))
	scaled := Quat{X: q.X * 3, Y: q.Y * 3, Z: q.Z * 3, W: q.W * 3}

	if !scaled.ToMat4().ApproxEqual(q.ToMat4(), 0.0001) {
		t.Error("non-unit quaternion should convert like its normalized form")
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
