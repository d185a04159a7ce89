package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/ik"
	"github.com/lixenwraith/marionette/vmath"
)

// ArmTransforms is one arm's published joint chain in world space
type ArmTransforms struct {
	Shoulder mgl64.Vec3
	Elbow    mgl64.Vec3
	Hand     mgl64.Vec3
	UpperArm ik.BoneTransform
	Forearm  ik.BoneTransform
}

// Skeleton is the per-tick output consumed by a rendering adapter: the
// root transform plus both solved arms, all in world space. The core
// itself never touches a scene graph.
type Skeleton struct {
	Root core.Pose
	Arms [core.SideCount]ArmTransforms
}

// toWorld re-expresses a robot-local solve in world space using the
// root's position and yaw
func toWorld(root *core.RobotState, solve ik.ArmSolve) ArmTransforms {
	rootQuat := mgl64.QuatRotate(root.Yaw, vmath.Up)

	place := func(local mgl64.Vec3) mgl64.Vec3 {
		return root.Position.Add(vmath.RotateY(local, root.Yaw))
	}
	bone := func(b ik.BoneTransform) ik.BoneTransform {
		return ik.BoneTransform{
			Pose: core.Pose{
				Position:    place(b.Position),
				Orientation: rootQuat.Mul(b.Orientation),
			},
			Length: b.Length,
		}
	}

	return ArmTransforms{
		Shoulder: place(solve.Shoulder),
		Elbow:    place(solve.Elbow),
		Hand:     place(solve.Hand),
		UpperArm: bone(solve.UpperArm),
		Forearm:  bone(solve.Forearm),
	}
}
