package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis. Movement happens in the X/Z plane.
var Up = mgl64.Vec3{0, 1, 0}

// Forward is the local facing axis of an unrotated character.
var Forward = mgl64.Vec3{0, 0, 1}

// ClampMagnitude scales v down to max length when it is longer.
func ClampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if v.Dot(v) <= max*max {
		return v
	}
	return v.Normalize().Mul(max)
}

// PlaneDirection maps a 2D stick vector onto the horizontal plane: x stays x,
// y becomes z, and the vertical component is zero.
func PlaneDirection(v mgl64.Vec2) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Y()}
}

// YawRotation returns the rotation whose forward axis points along the
// horizontal projection of dir. A degenerate dir yields the identity.
func YawRotation(dir mgl64.Vec3) mgl64.Quat {
	if dir.X() == 0 && dir.Z() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(math.Atan2(dir.X(), dir.Z()), Up)
}

// Slerp interpolates from q1 toward q2 along the shorter arc.
func Slerp(q1, q2 mgl64.Quat, t float64) mgl64.Quat {
	if q1.Dot(q2) < 0 {
		q2 = q2.Scale(-1)
	}
	return mgl64.QuatSlerp(q1, q2, t)
}

// QuatAngle is the rotation angle in radians between two unit quaternions.
func QuatAngle(q1, q2 mgl64.Quat) float64 {
	d := math.Abs(q1.Normalize().Dot(q2.Normalize()))
	return 2 * math.Acos(mgl64.Clamp(d, -1, 1))
}
