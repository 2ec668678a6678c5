package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
	"github.com/kdriscoll/driftline/internal/screen"
	"github.com/kdriscoll/driftline/internal/ui"
)

const (
	menuButtonW = 220.0
	menuButtonH = 48.0
	menuGap     = 16.0
)

// MenuPanel is the modal main menu. It dims the scene behind it (it is
// not full-screen, so the scene still draws), traps all events, and
// offers Resume and Quit buttons as hit zones.
type MenuPanel struct {
	ui.Base

	view  *screen.Viewport
	scene *ScenePanel

	buttonClr  color.RGBA
	hoverClr color.RGBA
}

// NewMenuPanel creates the menu over the given scene.
func NewMenuPanel(view *screen.Viewport, scene *ScenePanel) *MenuPanel {
	c := colorful.Hsv(215, 0.55, 0.45)
	r, g, b := c.RGB255()
	hi := colorful.Hsv(215, 0.55, 0.70)
	hr, hg, hb := hi.RGB255()
	return &MenuPanel{
		view:       view,
		scene:      scene,
		buttonClr:  color.RGBA{R: r, G: g, B: b, A: 255},
		hoverClr: color.RGBA{R: hr, G: hg, B: hb, A: 255},
	}
}

// KeyDown dismisses the menu on its own toggle or on back, and lets
// quit through.
func (m *MenuPanel) KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool {
	switch {
	case cmd.Has(command.Quit):
		m.UI().Quit()
	case cmd.Has(command.Menu), cmd.Has(command.Back):
		if isFirstPress {
			m.UI().Pop(m)
		}
	default:
		return false
	}
	return true
}

// Gesture dismisses the menu on a downward swipe.
func (m *MenuPanel) Gesture(kind input.GestureKind) bool {
	if kind == input.GestureSwipeDown {
		m.UI().Pop(m)
		return true
	}
	return false
}

// Draw dims the scene, draws the buttons and registers their zones.
func (m *MenuPanel) Draw(dst *ebiten.Image) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{A: 160}, false)

	m.drawButton(dst, 0, "resume", func() { m.UI().Pop(m) })
	m.drawButton(dst, 1, "quit", func() { m.UI().Quit() })
}

// drawButton draws the nth menu button and registers its hit zone in
// logical coordinates.
func (m *MenuPanel) drawButton(dst *ebiten.Image, n int, label string, fire func()) {
	x := -menuButtonW / 2
	y := float64(n)*(menuButtonH+menuGap) - menuButtonH
	rect := ui.Rect{X: x, Y: y, W: menuButtonW, H: menuButtonH}

	m.Zones.Add(rect, fire)

	clr := m.buttonClr
	if mx, my := m.UI().Mouse(); rect.Contains(mx, my) {
		clr = m.hoverClr
	}

	dx, dy := m.view.ToDevice(x, y)
	scale := float64(m.view.Zoom()) / 100
	bw := float32(menuButtonW * scale)
	bh := float32(menuButtonH * scale)
	vector.DrawFilledRect(dst, float32(dx), float32(dy), bw, bh, clr, false)
	ebitenutil.DebugPrintAt(dst, label, int(dx)+12, int(dy)+8)
}
