package ik

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/vmath"
)

// cameraAt builds a camera pose at a position with a yaw-only heading
func cameraAt(pos mgl64.Vec3, yaw float64) core.Pose {
	return core.Pose{
		Position:    pos,
		Orientation: mgl64.QuatRotate(yaw, vmath.Up),
	}
}

func controllerAt(pos mgl64.Vec3) core.Pose {
	return core.Pose{Position: pos, Orientation: mgl64.QuatIdent()}
}

func TestResolveFromBehind(t *testing.T) {
	// User behind the character, both headed +Z: the controller's
	// offset from the root carries straight into the local frame
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{0, 0, 0})
	camera := cameraAt(mgl64.Vec3{0, 1.6, -3}, 0)
	controller := controllerAt(mgl64.Vec3{0.15, 1.2, 0.4})

	target, forward := r.Resolve(core.Right, controller, camera, robot)

	assert.Equal(t, mgl64.Vec3{0, 0, 1}, forward)
	assert.InDelta(t, 0.15, target.X(), 1e-12)
	assert.InDelta(t, 1.2, target.Y(), 1e-12)
	assert.InDelta(t, 0.4, target.Z(), 1e-12)
}

func TestFacingMirror(t *testing.T) {
	// Identical controller world pose; only the camera moves from
	// behind the character to in front of it. Crossing the half-turn
	// threshold flips the local X sign and the forward axis.
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{0, 0, 0})
	controller := controllerAt(mgl64.Vec3{0.15, 1.2, 0.4})

	behind := cameraAt(mgl64.Vec3{0, 1.6, -3}, 0)
	fromBehind, fwdBehind := r.Resolve(core.Right, controller, behind, robot)

	front := cameraAt(mgl64.Vec3{0, 1.6, 3}, math.Pi)
	fromFront, fwdFront := r.Resolve(core.Right, controller, front, robot)

	require.Positive(t, fromBehind.X())
	assert.Negative(t, fromFront.X())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, fwdBehind)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, fwdFront)
}

func TestFacingThreshold(t *testing.T) {
	// Just under a quarter turn of yaw difference is still "behind"
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{})
	controller := controllerAt(mgl64.Vec3{0, 1.2, 0.3})

	_, fwd := r.Resolve(core.Right, controller, cameraAt(mgl64.Vec3{0, 1.6, -3}, math.Pi/2-0.01), robot)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, fwd)

	_, fwd = r.Resolve(core.Right, controller, cameraAt(mgl64.Vec3{0, 1.6, -3}, math.Pi/2+0.01), robot)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, fwd)
}

func TestReachBoxClamp(t *testing.T) {
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{})
	camera := cameraAt(mgl64.Vec3{0, 1.6, -3}, 0)

	// Way out of range on every axis
	controller := controllerAt(mgl64.Vec3{5, 10, 7})
	target, _ := r.Resolve(core.Right, controller, camera, robot)

	assert.InDelta(t, constants.ReachOutward, target.X(), 1e-12)
	assert.InDelta(t, constants.ReachTop, target.Y(), 1e-12)
	assert.InDelta(t, constants.HandForwardMax, target.Z(), 1e-12)

	// The left arm's lateral bound is the mirror: biased negative
	target, _ = r.Resolve(core.Left, controller, camera, robot)
	assert.InDelta(t, constants.ReachInward, target.X(), 1e-12)

	behind := controllerAt(mgl64.Vec3{-5, -10, -7})
	target, _ = r.Resolve(core.Left, behind, camera, robot)
	assert.InDelta(t, -constants.ReachOutward, target.X(), 1e-12)
	assert.InDelta(t, constants.ReachBottom, target.Y(), 1e-12)
	assert.InDelta(t, constants.HandForwardMin, target.Z(), 1e-12)
}

func TestResolveTracksRobotYaw(t *testing.T) {
	// A quarter-turned character sees the same controller offset
	// rotated into its own frame
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{})
	robot.Yaw = math.Pi / 2
	camera := cameraAt(mgl64.Vec3{-3, 1.6, 0}, math.Pi/2)
	controller := controllerAt(mgl64.Vec3{0.4, 1.2, -0.15})

	target, fwd := r.Resolve(core.Right, controller, camera, robot)

	assert.Equal(t, mgl64.Vec3{0, 0, 1}, fwd)
	assert.InDelta(t, 0.15, target.X(), 1e-12)
	assert.InDelta(t, 1.2, target.Y(), 1e-12)
	assert.InDelta(t, 0.4, target.Z(), 1e-12)
}

func TestResolveDegenerateCameraForward(t *testing.T) {
	// Camera looking straight down has no horizontal forward; the
	// resolver falls back to the fixed +Z heading instead of
	// normalizing a zero vector
	var r Resolver
	robot := core.NewRobotState(mgl64.Vec3{})
	camera := core.Pose{
		Position:    mgl64.Vec3{0, 3, 0},
		Orientation: mgl64.QuatBetweenVectors(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, -1, 0}),
	}
	controller := controllerAt(mgl64.Vec3{0.15, 1.2, 0.3})

	target, fwd := r.Resolve(core.Right, controller, camera, robot)

	assert.True(t, vmath.Finite(target))
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, fwd)
	assert.InDelta(t, 0.15, target.X(), 1e-12)
}
