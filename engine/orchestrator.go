package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/event"
	"github.com/lixenwraith/marionette/ik"
	"github.com/lixenwraith/marionette/input"
	"github.com/lixenwraith/marionette/physics"
	"github.com/lixenwraith/marionette/vmath"
)

// Orchestrator owns the character state and runs the animation core in
// fixed order once per tick: sample input, integrate root motion,
// resolve hand targets (left then right), solve both arms, publish.
// No component observes a partially updated state from another
// component mid-tick.
//
// Single-threaded by contract: all calls happen inside the caller's
// frame callback. Ending the session is simply the absence of further
// Tick calls; any partially applied tick is the last state retained.
type Orchestrator struct {
	sampler    *input.Sampler
	poses      PoseSource
	integrator physics.Integrator
	resolver   ik.Resolver
	solver     ik.Solver

	robot *core.RobotState
	arms  [core.SideCount]*core.ArmState

	skeleton Skeleton
	sink     event.Sink

	session uuid.UUID
	log     *zap.Logger
}

// Option tweaks orchestrator construction
type Option func(*Orchestrator)

// WithIntegrator substitutes tuned locomotion parameters
func WithIntegrator(g physics.Integrator) Option {
	return func(o *Orchestrator) { o.integrator = g }
}

// WithEventSink registers a synchronous lifecycle event receiver
func WithEventSink(sink event.Sink) Option {
	return func(o *Orchestrator) { o.sink = sink }
}

// WithLogger replaces the default no-op logger
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) { o.log = log }
}

// New wires the animation core around an input source and a pose source
func New(src input.Source, poses PoseSource, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sampler:    input.NewSampler(src),
		poses:      poses,
		integrator: physics.NewIntegrator(),
		session:    uuid.New(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With(zap.String("session", o.session.String()))
	return o
}

// Session identifies this orchestrator's lifetime for log correlation
func (o *Orchestrator) Session() uuid.UUID {
	return o.session
}

// Placed reports whether the character exists yet
func (o *Orchestrator) Placed() bool {
	return o.robot != nil
}

// Place instantiates the character at a world position. Called once,
// when the placement collaborator picks a spot (surface hit or default
// fallback); the states it creates persist for the session and are
// mutated in place every tick, never recreated. Repeated calls are
// ignored.
func (o *Orchestrator) Place(pos mgl64.Vec3) {
	if o.Placed() {
		o.log.Warn("placement ignored, character already placed")
		return
	}

	o.robot = core.NewRobotState(pos)
	for side := core.Side(0); side < core.SideCount; side++ {
		o.arms[side] = core.NewArmState(side)
	}

	o.log.Info("character placed",
		zap.Float64("x", pos.X()),
		zap.Float64("y", pos.Y()),
		zap.Float64("z", pos.Z()),
	)
	o.emit(event.TypePlaced)
}

// Tick runs one fixed-timestep frame of the animation core. A no-op
// until placement.
func (o *Orchestrator) Tick() {
	if !o.Placed() {
		return
	}

	frame := o.sampler.Frame()
	poses := o.poses.Poses()

	wasJumping := o.robot.Jumping
	o.integrator.Step(o.robot, frame, constants.TickDelta)
	switch {
	case o.robot.Jumping && !wasJumping:
		o.emit(event.TypeJumpStarted)
	case !o.robot.Jumping && wasJumping:
		o.emit(event.TypeLanded)
	}

	var solves [core.SideCount]ik.ArmSolve
	for side := core.Side(0); side < core.SideCount; side++ {
		target, forward := o.resolver.Resolve(side, poses.Controller(side), poses.Camera, o.robot)
		solves[side] = o.solver.Solve(o.arms[side], target, forward, side)
	}

	o.skeleton = Skeleton{
		Root: core.Pose{
			Position:    o.robot.Position,
			Orientation: mgl64.QuatRotate(o.robot.Yaw, vmath.Up),
		},
	}
	for side := core.Side(0); side < core.SideCount; side++ {
		o.skeleton.Arms[side] = toWorld(o.robot, solves[side])
	}
}

// Skeleton returns the transforms published by the most recent tick
func (o *Orchestrator) Skeleton() Skeleton {
	return o.skeleton
}

// Robot exposes the root state for inspection; callers must not write
// it, the orchestrator is the sole owner.
func (o *Orchestrator) Robot() *core.RobotState {
	return o.robot
}

// Arm exposes one arm's state for inspection, same ownership rule
func (o *Orchestrator) Arm(side core.Side) *core.ArmState {
	return o.arms[side]
}

// End marks the session over. Coarse cancellation: the caller just
// stops ticking; this only raises the closing event for observers.
func (o *Orchestrator) End() {
	if o.Placed() {
		o.emit(event.TypeSessionEnded)
	}
	o.log.Info("session ended")
}

func (o *Orchestrator) emit(t event.Type) {
	if o.sink == nil {
		return
	}
	o.sink(event.Event{Type: t, Position: o.robot.Position})
}
