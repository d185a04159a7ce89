package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.0, WrapAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapAngle(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0.1-math.Pi, WrapAngle(math.Pi+0.1), 1e-12)
}

func TestRotateYMatchesQuat(t *testing.T) {
	v := mgl64.Vec3{0.3, 1.2, -0.7}
	for _, angle := range []float64{0, 0.4, math.Pi / 2, math.Pi, -2.1} {
		want := mgl64.QuatRotate(angle, Up).Rotate(v)
		got := RotateY(v, angle)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, want[i], got[i], 1e-12, "angle %v component %d", angle, i)
		}
	}
}

func TestHorizontalForward(t *testing.T) {
	// Identity orientation looks along +Z
	f := HorizontalForward(mgl64.QuatIdent())
	assert.InDelta(t, 0.0, f.X(), 1e-12)
	assert.InDelta(t, 1.0, f.Z(), 1e-12)

	// A pitched camera still yields a unit horizontal direction
	pitched := mgl64.QuatRotate(0.6, mgl64.Vec3{1, 0, 0})
	f = HorizontalForward(pitched)
	assert.InDelta(t, 1.0, f.Len(), 1e-12)
	assert.Zero(t, f.Y())
}

func TestHorizontalForwardDegenerate(t *testing.T) {
	// Looking straight down leaves no horizontal component; the
	// fallback is the fixed +Z forward
	down := mgl64.QuatBetweenVectors(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, -1, 0})
	f := HorizontalForward(down)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, f)
}

func TestClampAlongAxis(t *testing.T) {
	axis := mgl64.Vec3{0, 0, 1}
	v := mgl64.Vec3{0.5, 1.0, 2.0}

	clamped := ClampAlongAxis(v, axis, -0.3, 0.8)
	assert.InDelta(t, 0.8, clamped.Z(), 1e-12)
	// Non-axis components untouched
	assert.Equal(t, v.X(), clamped.X())
	assert.Equal(t, v.Y(), clamped.Y())

	// In-range values pass through unchanged
	inRange := mgl64.Vec3{0.5, 1.0, 0.4}
	assert.Equal(t, inRange, ClampAlongAxis(inRange, axis, -0.3, 0.8))

	// Flipped axis clamps the negated component
	back := ClampAlongAxis(v, mgl64.Vec3{0, 0, -1}, -0.3, 0.8)
	assert.InDelta(t, 0.3, back.Z(), 1e-12)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(mgl64.Vec3{1, 2, 3}))
	assert.False(t, Finite(mgl64.Vec3{math.NaN(), 0, 0}))
	assert.False(t, Finite(mgl64.Vec3{0, math.Inf(1), 0}))
}
