package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
	"github.com/kdriscoll/driftline/internal/screen"
	"github.com/kdriscoll/driftline/internal/ui"
)

const (
	dialogW = 420.0
	dialogH = 180.0
)

// DialogPanel is a small modal help card. Any click dismisses it; the
// ok zone exercises the zone press/release path.
type DialogPanel struct {
	ui.Base

	view *screen.Viewport
}

// NewDialogPanel creates the help dialog.
func NewDialogPanel(view *screen.Viewport) *DialogPanel {
	return &DialogPanel{view: view}
}

// Click dismisses the dialog.
func (d *DialogPanel) Click(x, y float64, clicks int) bool {
	d.UI().Pop(d)
	return true
}

// KeyDown dismisses the dialog on back, select or help.
func (d *DialogPanel) KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool {
	if cmd.Has(command.Back) || cmd.Has(command.Select) || cmd.Has(command.Help) {
		if isFirstPress {
			d.UI().Pop(d)
		}
		return true
	}
	return false
}

// Draw renders the card and registers the ok zone.
func (d *DialogPanel) Draw(dst *ebiten.Image) {
	x := -dialogW / 2
	y := -dialogH / 2

	dx, dy := d.view.ToDevice(x, y)
	scale := float64(d.view.Zoom()) / 100
	vector.DrawFilledRect(dst, float32(dx), float32(dy),
		float32(dialogW*scale), float32(dialogH*scale),
		color.RGBA{R: 24, G: 28, B: 40, A: 240}, false)

	ebitenutil.DebugPrintAt(dst, "drag to pan, escape for menu, ctrl+q to quit", int(dx)+16, int(dy)+16)

	okRect := ui.Rect{X: -40, Y: y + dialogH - 64, W: 80, H: 40}
	d.Zones.Add(okRect, func() { d.UI().Pop(d) })
	ox, oy := d.view.ToDevice(okRect.X, okRect.Y)
	vector.DrawFilledRect(dst, float32(ox), float32(oy),
		float32(okRect.W*scale), float32(okRect.H*scale),
		color.RGBA{R: 48, G: 90, B: 140, A: 255}, false)
	ebitenutil.DebugPrintAt(dst, "ok", int(ox)+30, int(oy)+12)
}
