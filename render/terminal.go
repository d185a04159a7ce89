package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marionette/core"
	"github.com/lixenwraith/marionette/engine"
)

// Cells per meter; X doubled to compensate for terminal cell aspect
const (
	cellsPerMeterX = 8.0
	cellsPerMeterZ = 4.0
)

var (
	styleRoot  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleJoint = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBone  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal draws a top-down (X/Z plane) view of the published skeleton
// onto a tcell screen, with a one-line status readout. It is a pure
// consumer of Skeleton values; it never reaches into character state.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Render draws one frame and flushes it to the terminal
func (t *Terminal) Render(skel engine.Skeleton) {
	t.screen.Clear()
	width, height := t.screen.Size()

	// World origin sits at screen center; +Z up the screen
	project := func(p mgl64.Vec3) (int, int) {
		x := width/2 + int(p.X()*cellsPerMeterX)
		y := height/2 - int(p.Z()*cellsPerMeterZ)
		return x, y
	}

	for side := core.Side(0); side < core.SideCount; side++ {
		arm := skel.Arms[side]
		sx, sy := project(arm.Shoulder)
		ex, ey := project(arm.Elbow)
		hx, hy := project(arm.Hand)

		t.line(sx, sy, ex, ey)
		t.line(ex, ey, hx, hy)
		t.put(sx, sy, 'o', styleJoint)
		t.put(ex, ey, '+', styleJoint)
		t.put(hx, hy, '#', styleJoint)
	}

	// Root drawn last so it stays visible under overlapping joints
	rx, ry := project(skel.Root.Position)
	t.put(rx, ry, '@', styleRoot)

	// Facing tick one cell ahead of the root
	heading := skel.Root.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	fx, fy := project(skel.Root.Position.Add(heading.Mul(0.4)))
	if fx != rx || fy != ry {
		t.put(fx, fy, '^', styleRoot)
	}

	status := fmt.Sprintf(" pos (%.2f, %.2f, %.2f)  altitude %.2f ",
		skel.Root.Position.X(), skel.Root.Position.Y(), skel.Root.Position.Z(),
		skel.Root.Position.Y())
	for i, r := range status {
		t.put(i, height-1, r, styleText)
	}

	t.screen.Show()
}

func (t *Terminal) put(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(x, y, r, nil, style)
}

// line draws a coarse segment between two cells
func (t *Terminal) line(x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}
	for i := 1; i < steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		t.put(x, y, '.', styleBone)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
