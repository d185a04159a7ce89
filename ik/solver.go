package ik

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/vmath"
)

// BoneTransform is one solved segment: positioned at its midpoint and
// oriented along the segment. Twist about the bone's own axis is
// unconstrained; the renderer picks its own convention.
type BoneTransform struct {
	core.Pose
	Length float64
}

// ArmSolve is one arm's solver output in robot-local coordinates
type ArmSolve struct {
	Shoulder mgl64.Vec3
	Elbow    mgl64.Vec3
	Hand     mgl64.Vec3
	UpperArm BoneTransform
	Forearm  BoneTransform
}

// boneRest is the unrotated bone direction; orientations are the
// rotation from it onto the solved segment
var boneRest = mgl64.Vec3{0, 1, 0}

// Solver analytically places a two-segment arm. It is total: every
// target, reachable or not, produces finite joint positions. Rather
// than the geometrically exact two-bone solution, the elbow is biased
// to bend toward the character's front, a deliberate guard-stance look.
type Solver struct{}

// Solve advances one arm toward a resolved target and recomputes its
// joints. The arm state carries the smoothed hand across ticks.
func (Solver) Solve(arm *core.ArmState, target, forward mgl64.Vec3, side core.Side) ArmSolve {
	arm.Target = target

	// First-order filter toward the target, then re-clamp the forward
	// component so smoothing cannot reintroduce an out-of-range pose
	hand := vmath.Lerp3(arm.Hand, target, constants.HandSmoothing)
	toHand := vmath.ClampAlongAxis(hand.Sub(arm.Shoulder), forward,
		constants.HandForwardMin, constants.HandForwardMax)

	maxReach := constants.ReachFraction * constants.TotalArmLength
	dist := toHand.Len()
	if dist > maxReach {
		toHand = toHand.Mul(maxReach / dist)
		dist = maxReach
	}

	var direction mgl64.Vec3
	if dist < constants.DegenerateDistance {
		// Target effectively at the shoulder: substitute a fixed
		// default offset instead of normalizing a near-zero vector
		toHand = mgl64.Vec3{side.Mirror() * constants.DefaultHandLateral, 0, 0}.
			Add(forward.Mul(constants.DefaultHandForward))
		direction = toHand.Normalize()
	} else {
		direction = toHand.Mul(1 / dist)
	}
	hand = arm.Shoulder.Add(toHand)

	// Elbow: forward-biased bend with a per-side outward lean,
	// renormalized onto the upper-arm length
	elbowDir := direction.Add(forward.Mul(constants.ElbowForwardBias))
	elbowDir[0] += side.Mirror() * constants.ElbowLateralBias
	elbowOffset := elbowDir.Normalize().Mul(constants.UpperArmLength)

	// Floor: never let the elbow fall behind the guard line
	if fwd := elbowOffset.Dot(forward); fwd < constants.ElbowForwardFloor {
		elbowOffset = elbowOffset.Add(forward.Mul(constants.ElbowForwardFloor - fwd))
	}
	elbow := arm.Shoulder.Add(elbowOffset)

	arm.Hand = hand
	arm.Elbow = elbow

	return ArmSolve{
		Shoulder: arm.Shoulder,
		Elbow:    elbow,
		Hand:     hand,
		UpperArm: boneBetween(arm.Shoulder, elbow),
		Forearm:  boneBetween(elbow, hand),
	}
}

// boneBetween builds a segment transform at the midpoint of from->to,
// oriented to face the far joint
func boneBetween(from, to mgl64.Vec3) BoneTransform {
	seg := to.Sub(from)
	length := seg.Len()

	orient := mgl64.QuatIdent()
	if length > vmath.Epsilon {
		orient = mgl64.QuatBetweenVectors(boneRest, seg.Mul(1/length))
	}

	return BoneTransform{
		Pose: core.Pose{
			Position:    from.Add(seg.Mul(0.5)),
			Orientation: orient,
		},
		Length: length,
	}
}
