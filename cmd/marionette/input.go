package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/input"
)

// Terminals report key presses, not holds, so each press injects a
// stick impulse that decays toward neutral every tick. Tuned so a
// repeating held key sustains roughly full deflection.
const (
	stickImpulse = 1.0
	stickDecay   = 0.85
)

// keyboard adapts terminal key events to the two-controller input
// convention: WASD drives the movement stick, left/right arrows the
// rotation stick, space the jump button.
type keyboard struct {
	move   mgl64.Vec2
	rotate mgl64.Vec2
	jump   bool
}

// HandleKey folds one key event into the virtual sticks
func (k *keyboard) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.rotate[0] = -stickImpulse
	case tcell.KeyRight:
		k.rotate[0] = stickImpulse
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			k.move[1] = -stickImpulse // stick up is negative Y, forward
		case 's':
			k.move[1] = stickImpulse
		case 'a':
			k.move[0] = -stickImpulse
		case 'd':
			k.move[0] = stickImpulse
		case ' ':
			k.jump = true
		}
	}
}

// Decay relaxes the sticks toward neutral and releases the jump button;
// called once per tick after sampling
func (k *keyboard) Decay() {
	k.move = k.move.Mul(stickDecay)
	k.rotate = k.rotate.Mul(stickDecay)
	k.jump = false
}

// Controller implements input.Source
func (k *keyboard) Controller(index int) (input.Sample, bool) {
	switch index {
	case input.MoveController:
		return input.Sample{Stick: k.move, Button: k.jump}, true
	case input.RotateController:
		return input.Sample{Stick: k.rotate}, true
	}
	return input.Sample{}, false
}
