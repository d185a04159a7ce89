package engine

import (
	"github.com/lixenwraith/marionette/core"
)

// FramePoses is the tracking collaborator's per-tick snapshot: the
// camera and both controllers in world space. Poses are well-formed by
// contract; an untracked device simply repeats its last pose.
type FramePoses struct {
	Camera          core.Pose
	LeftController  core.Pose
	RightController core.Pose
}

// PoseSource supplies world poses once per tick
type PoseSource interface {
	Poses() FramePoses
}

// Controller returns the side's controller pose
func (p FramePoses) Controller(side core.Side) core.Pose {
	if side == core.Left {
		return p.LeftController
	}
	return p.RightController
}
