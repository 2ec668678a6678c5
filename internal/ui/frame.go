package ui

import "github.com/hajimehoshi/ebiten/v2"

// StepAll commits any queued stack mutation, then advances every
// stacked panel, bottom to top.
func (u *UI) StepAll() {
	u.commit()

	for _, p := range u.stack {
		p.Step()
	}
}

// DrawAll draws the visible part of the stack. All zones are cleared
// first so the draw pass re-registers them; then everything from the
// top-most full-screen panel upward is drawn, bottom to top. Panels
// culled here still receive events - full-screen-ness affects drawing
// only.
func (u *UI) DrawAll(dst *ebiten.Image) {
	for _, p := range u.stack {
		p.ClearZones()
	}

	start := 0
	for i := len(u.stack) - 1; i >= 0; i-- {
		if u.stack[i].IsFullScreen() {
			start = i
			break
		}
	}

	for _, p := range u.stack[start:] {
		p.Draw(dst)
	}
}
