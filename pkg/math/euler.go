package math

import "math"

// Euler is an orientation expressed as three axis rotations in degrees.
// Pitch turns about X, Yaw about Y and Roll about Z. Every conversion in
// this package composes them in the same order: X first, then Y, then Z.
type Euler struct {
	Pitch, Yaw, Roll float32
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	// Adding 360 to a tiny negative value can round up to exactly 360.
	if w >= 360 {
		w = 0
	}
	return w
}

// Wrap returns e with every angle mapped into [0, 360).
func (e Euler) Wrap() Euler {
	return Euler{
		Pitch: WrapDegrees(e.Pitch),
		Yaw:   WrapDegrees(e.Yaw),
		Roll:  WrapDegrees(e.Roll),
	}
}

// Lerp blends each angle linearly: (1-t)*e + t*other.
// No shortest-path handling is applied; that is the point of the Euler pane.
func (e Euler) Lerp(other Euler, t float32) Euler {
	return Euler{
		Pitch: (1-t)*e.Pitch + t*other.Pitch,
		Yaw:   (1-t)*e.Yaw + t*other.Yaw,
		Roll:  (1-t)*e.Roll + t*other.Roll,
	}
}

// ToMat4 is shorthand for EulerToMat4(e).
func (e Euler) ToMat4() Mat4 {
	return EulerToMat4(e)
}

// ToQuat is shorthand for EulerToQuat(e).
func (e Euler) ToQuat() Quat {
	return EulerToQuat(e)
}

var (
	axisX = Vec3{X: 1}
	axisY = Vec3{Y: 1}
	axisZ = Vec3{Z: 1}
)

// EulerToMat4 builds the rotation matrix Rz * Ry * Rx.
func EulerToMat4(e Euler) Mat4 {
	return RotateZ(Radians(e.Roll)).
		Mul(RotateY(Radians(e.Yaw))).
		Mul(RotateX(Radians(e.Pitch)))
}

// EulerToQuat builds the unit quaternion qz * qy * qx, the same rotation
// as EulerToMat4.
func EulerToQuat(e Euler) Quat {
	qx := QuatFromAxisAngle(axisX, Radians(e.Pitch))
	qy := QuatFromAxisAngle(axisY, Radians(e.Yaw))
	qz := QuatFromAxisAngle(axisZ, Radians(e.Roll))
	return qz.Mul(qy).Mul(qx).Normalize()
}
