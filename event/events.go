package event

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Type discriminates animation lifecycle events
type Type uint8

const (
	TypeNone Type = iota

	// TypePlaced fires once when the character is instantiated at its
	// initial world position
	TypePlaced

	// TypeJumpStarted and TypeLanded bracket the airborne phase
	TypeJumpStarted
	TypeLanded

	// TypeSessionEnded fires when tick invocations stop for good
	TypeSessionEnded
)

// Event is a lifecycle notification with the root position at the time
// it fired
type Event struct {
	Type     Type
	Position mgl64.Vec3
}

// Sink receives events synchronously within the tick that raised them
type Sink func(Event)
