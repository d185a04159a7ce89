package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the small-magnitude threshold below which a vector is
// treated as degenerate rather than normalized
const Epsilon = 1e-6

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle normalizes an angle into (-pi, pi]
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Lerp3 interpolates a toward b by t
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// RotateY rotates v about the vertical axis by angle radians
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{
		v.X()*cos + v.Z()*sin,
		v.Y(),
		-v.X()*sin + v.Z()*cos,
	}
}

// HorizontalForward projects the orientation's forward direction onto
// the ground plane and renormalizes. A near-vertical forward (camera
// pointed straight up or down) degenerates to +Z.
func HorizontalForward(q mgl64.Quat) mgl64.Vec3 {
	f := q.Rotate(mgl64.Vec3{0, 0, 1})
	f[1] = 0
	if f.Len() < Epsilon {
		return mgl64.Vec3{0, 0, 1}
	}
	return f.Normalize()
}

// YawOf returns the yaw angle of a horizontal direction, zero along +Z
func YawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}

// ClampAlongAxis clamps the component of v along the unit axis into
// [lo, hi], adding back only the delta needed to correct it. Components
// of v orthogonal to the axis are untouched.
func ClampAlongAxis(v, axis mgl64.Vec3, lo, hi float64) mgl64.Vec3 {
	s := v.Dot(axis)
	return v.Add(axis.Mul(Clamp(s, lo, hi) - s))
}

// Finite reports whether every component of v is a finite number
func Finite(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}
