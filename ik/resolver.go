package ik

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/vmath"
)

// Resolver maps a tracked controller's world pose into the character's
// local frame and clamps the result into the arm's reach box. The user
// may stand on either side of the character; the facing mirror keeps
// their left hand driving a consistent arm regardless.
type Resolver struct{}

// Resolve produces one arm's local hand target and the tick's forward
// axis. The forward axis is recomputed here every tick from relative
// facing, never stored as committed state.
func (Resolver) Resolve(side core.Side, controller, camera core.Pose, robot *core.RobotState) (target, forward mgl64.Vec3) {
	camForward := vmath.HorizontalForward(camera.Orientation)
	camYaw := vmath.YawOf(camForward)

	// The user views the character from its front when their heading
	// differs from the robot's by more than a quarter turn
	yawDiff := vmath.WrapAngle(camYaw - robot.Yaw)
	facing := math.Abs(yawDiff) > math.Pi/2

	// Controller world position -> camera-relative -> robot-local:
	// the camera-relative offsets are un-rotated by the camera yaw,
	// then rotated into the robot frame
	camRel := vmath.RotateY(controller.Position.Sub(camera.Position), -camYaw)
	rootRel := vmath.RotateY(robot.Position.Sub(camera.Position), -camYaw)
	local := vmath.RotateY(camRel.Sub(rootRel), camYaw-robot.Yaw)

	// Facing mirror: negating X and Z keeps the user's left hand on a
	// consistent side of the character from its own point of view
	if facing {
		local[0] = -local[0]
		local[2] = -local[2]
		forward = mgl64.Vec3{0, 0, -1}
	} else {
		forward = mgl64.Vec3{0, 0, 1}
	}

	// Independent clamps: asymmetric lateral, shared vertical band, and
	// a delta-corrected clamp along the forward axis that leaves the
	// non-forward components untouched
	box := core.ReachBoxFor(side)
	local[0] = vmath.Clamp(local.X(), box.MinX, box.MaxX)
	local[1] = vmath.Clamp(local.Y(), box.MinY, box.MaxY)
	local = vmath.ClampAlongAxis(local, forward, box.MinForward, box.MaxForward)

	return local, forward
}
