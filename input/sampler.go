package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/core"
)

// Controller index convention: index 0 carries the movement stick and
// the jump button, index 1 carries the rotation stick.
const (
	MoveController   = 0
	RotateController = 1
)

// Sample is one controller's raw per-tick reading
type Sample struct {
	Stick  mgl64.Vec2
	Button bool
}

// Source supplies raw controller samples once per tick. Controller
// returns ok=false when the device is absent or not yet tracked; the
// sampler treats that as neutral input.
type Source interface {
	Controller(index int) (Sample, bool)
}

// Sampler turns raw controller samples into InputFrames, retaining the
// previous tick's jump button state across calls so rising edges can be
// detected downstream.
type Sampler struct {
	src      Source
	prevJump bool
}

// NewSampler wraps a controller source
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Frame samples both controllers for the current tick. Missing devices
// contribute zero axes and a released button.
func (s *Sampler) Frame() core.InputFrame {
	frame := core.InputFrame{JumpPrev: s.prevJump}

	if move, ok := s.src.Controller(MoveController); ok {
		frame.Move = move.Stick
		frame.Jump = move.Button
	}
	if rotate, ok := s.src.Controller(RotateController); ok {
		frame.Rotate = rotate.Stick
	}

	s.prevJump = frame.Jump
	return frame
}
