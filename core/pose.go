package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid transform: a world or local position plus a unit
// quaternion orientation. Used for the camera, the tracked controllers,
// the robot root, and published bone transforms.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityPose returns a pose at the origin with no rotation
func IdentityPose() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// Side identifies one of the two arms. A fixed two-valued enum indexes
// per-arm state arrays directly; joints are never looked up by name.
type Side uint8

const (
	Left Side = iota
	Right
)

// SideCount sizes fixed per-arm arrays
const SideCount = 2

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Mirror returns +1 for the right side and -1 for the left, used to
// mirror lateral offsets and biases across the body midline
func (s Side) Mirror() float64 {
	if s == Left {
		return -1
	}
	return 1
}
