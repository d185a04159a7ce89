package constants

// Locomotion Tuning
const (
	// MoveSpeed is planar movement speed in meters per second
	MoveSpeed = 2.0

	// RotateSpeed is yaw rotation speed in radians per second
	RotateSpeed = 3.0

	// JumpVelocity is the initial vertical velocity on a jump edge (m/s)
	JumpVelocity = 5.0

	// Gravity is vertical acceleration while airborne (m/s^2)
	Gravity = -9.81

	// VelocityDamping scales horizontal velocity each tick after the
	// position apply; vertical jump velocity is never damped
	VelocityDamping = 0.8
)

// Tick Timing
const (
	// TickRate is the nominal simulation frequency
	TickRate = 60

	// TickDelta is the fixed per-tick timestep in seconds. The core
	// integrates on this nominal value regardless of wall-clock elapsed
	// time; substituting measured delta time changes jump height and
	// movement speed under variable frame rates.
	TickDelta = 1.0 / TickRate
)
