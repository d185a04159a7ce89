package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// InputFrame is one tick's sampled input: two independent stick axes
// and the jump button with its previous-tick value retained for edge
// detection. Absent device data is neutral input, never an error.
type InputFrame struct {
	Move   mgl64.Vec2
	Rotate mgl64.Vec2

	Jump     bool
	JumpPrev bool
}

// JumpPressed reports a rising edge: pressed this tick, not the last
func (f InputFrame) JumpPressed() bool {
	return f.Jump && !f.JumpPrev
}
