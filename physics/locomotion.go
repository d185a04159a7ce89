package physics

import (
	"math"

	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/core"
)

// Integrator turns stick input and a jump edge into root motion. Speeds
// default to the tuned constants; parameter overrides replace fields
// before the first tick, never mid-session.
type Integrator struct {
	MoveSpeed   float64
	RotateSpeed float64
	JumpImpulse float64
	Gravity     float64
	Damping     float64
}

// NewIntegrator returns an integrator with the tuned default speeds
func NewIntegrator() Integrator {
	return Integrator{
		MoveSpeed:   constants.MoveSpeed,
		RotateSpeed: constants.RotateSpeed,
		JumpImpulse: constants.JumpVelocity,
		Gravity:     constants.Gravity,
		Damping:     constants.VelocityDamping,
	}
}

// Step advances the root state by one fixed tick. Pure and
// deterministic: same state and input always produce the same result,
// with no failure paths.
//
// Order matters: yaw updates first so planar displacement is rotated by
// the post-update heading; the position apply precedes damping so the
// damping factor reaches the next tick's velocity, not this one's
// displacement.
func (g Integrator) Step(r *core.RobotState, in core.InputFrame, dt float64) {
	r.Yaw -= in.Rotate.X() * g.RotateSpeed * dt

	// Stick displacement for this tick, rotated into world space by the
	// current yaw. The dt is baked in here; Velocity is applied to
	// Position below without further scaling.
	forward := -in.Move.Y() * g.MoveSpeed * dt
	strafe := -in.Move.X() * g.MoveSpeed * dt
	sin, cos := math.Sincos(r.Yaw)
	r.Velocity[0] += forward*sin + strafe*cos
	r.Velocity[1] += forward*cos - strafe*sin

	// Jump state machine: Grounded -> Jumping on a rising edge only
	if in.JumpPressed() && !r.Jumping {
		r.Jumping = true
		r.JumpVelocity = g.JumpImpulse
	}
	if r.Jumping {
		r.JumpVelocity += g.Gravity * dt
		r.Position[1] += r.JumpVelocity * dt
		if r.Position.Y() <= 0 {
			r.Position[1] = 0
			r.JumpVelocity = 0
			r.Jumping = false
		}
	}

	r.Position[0] += r.Velocity.X()
	r.Position[2] += r.Velocity.Y()

	r.Velocity = r.Velocity.Mul(g.Damping)
}
