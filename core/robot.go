package core

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/constants"
)

// RobotState is the character's root motion state. Root rotation is
// yaw-only; there is no pitch or roll. Created once at placement and
// mutated in place every tick thereafter.
//
// Invariants: Position.Y() >= 0 always; !Jumping implies JumpVelocity == 0.
type RobotState struct {
	Position mgl64.Vec3
	Yaw      float64

	// Velocity is the ground-plane (X, Z) displacement for the current
	// tick. Despite the name, the per-tick dt is already baked in; it
	// is applied to Position without further scaling.
	Velocity mgl64.Vec2

	// JumpVelocity is vertical velocity in m/s, nonzero only while Jumping
	JumpVelocity float64
	Jumping      bool
}

// NewRobotState places the character root at a world position, grounded
// and at rest
func NewRobotState(pos mgl64.Vec3) *RobotState {
	return &RobotState{Position: pos}
}

// Grounded reports whether the character is on the ground plane
func (r *RobotState) Grounded() bool {
	return !r.Jumping
}

// ReachBox bounds where a hand target may be placed before it reaches
// the IK solver, in robot-local coordinates. The lateral bound is
// asymmetric: each arm reaches further outward than across the body.
type ReachBox struct {
	MinX, MaxX             float64
	MinY, MaxY             float64
	MinForward, MaxForward float64
}

// ReachBoxFor returns the reach bounds for one side
func ReachBoxFor(side Side) ReachBox {
	box := ReachBox{
		MinY:       constants.ReachBottom,
		MaxY:       constants.ReachTop,
		MinForward: constants.HandForwardMin,
		MaxForward: constants.HandForwardMax,
	}
	if side == Left {
		box.MinX = -constants.ReachOutward
		box.MaxX = constants.ReachInward
	} else {
		box.MinX = -constants.ReachInward
		box.MaxX = constants.ReachOutward
	}
	return box
}

// ArmState is one arm's solver state in robot-local coordinates.
// Shoulder is a fixed anchor; Hand and Elbow are the previous solve's
// output, carried across ticks so the hand filter has history.
//
// Invariant: |Hand - Shoulder| <= ReachFraction * TotalArmLength.
type ArmState struct {
	Side     Side
	Shoulder mgl64.Vec3
	Hand     mgl64.Vec3
	Elbow    mgl64.Vec3

	// Target is the resolver's most recent output, retained for
	// inspection; the solver smooths Hand toward it rather than
	// snapping
	Target mgl64.Vec3

	Reach ReachBox
}

// NewArmState anchors an arm at its side's shoulder position, hand
// resting at the shoulder's default offset
func NewArmState(side Side) *ArmState {
	shoulder := mgl64.Vec3{
		side.Mirror() * constants.ShoulderLateral,
		constants.ShoulderHeight,
		0,
	}
	rest := shoulder.Add(mgl64.Vec3{
		side.Mirror() * constants.DefaultHandLateral,
		0,
		constants.DefaultHandForward,
	})
	return &ArmState{
		Side:     side,
		Shoulder: shoulder,
		Hand:     rest,
		Elbow:    shoulder,
		Target:   rest,
		Reach:    ReachBoxFor(side),
	}
}
