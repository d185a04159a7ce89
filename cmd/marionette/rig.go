package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/engine"
	"github.com/lixenwraith/marionette/vmath"
)

// rig is a scripted stand-in for the AR tracking collaborator: a camera
// slowly orbiting the play area with two controllers swaying at chest
// height in front of it. Advance moves the script one tick.
type rig struct {
	t float64
}

const (
	orbitRadius  = 2.5
	orbitSpeed   = 0.1 // rad/s
	swayRadius   = 0.25
	swaySpeed    = 1.2
	chestHeight  = 1.4
	handsForward = 0.5
)

// Advance moves the scripted rig forward by one timestep
func (r *rig) Advance(dt float64) {
	r.t += dt
}

// Poses implements engine.PoseSource
func (r *rig) Poses() engine.FramePoses {
	angle := r.t * orbitSpeed

	camPos := mgl64.Vec3{
		math.Sin(angle) * orbitRadius,
		1.6,
		math.Cos(angle) * orbitRadius,
	}
	// Camera looks back at the world origin
	camYaw := math.Atan2(-camPos.X(), -camPos.Z())
	camera := core.Pose{
		Position:    camPos,
		Orientation: mgl64.QuatRotate(camYaw, vmath.Up),
	}

	controller := func(lateral float64, phase float64) core.Pose {
		sway := math.Sin(r.t*swaySpeed+phase) * swayRadius
		local := mgl64.Vec3{lateral + sway*0.3, chestHeight + sway*0.5, handsForward}
		return core.Pose{
			Position:    camPos.Add(vmath.RotateY(local, camYaw)),
			Orientation: camera.Orientation,
		}
	}

	return engine.FramePoses{
		Camera:          camera,
		LeftController:  controller(-0.3, 0),
		RightController: controller(0.3, math.Pi/2),
	}
}
