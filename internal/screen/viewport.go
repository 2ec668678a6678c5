// Package screen converts raw backend coordinates into the application's
// logical coordinate space.
//
// Logical space is centered on the viewport: (0,0) is the middle of the
// screen, the left edge is at -width/2, the top at -height/2. Zoom is a
// percentage; at 100 one logical unit equals one device pixel.
package screen

import "github.com/hajimehoshi/ebiten/v2"

// MinZoom and MaxZoom bound the zoom percentage.
const (
	MinZoom = 25
	MaxZoom = 400
)

// Viewport holds the current logical viewport geometry and zoom factor.
type Viewport struct {
	width  float64
	height float64
	zoom   int
}

// NewViewport returns a viewport of the given device size at 100% zoom.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{zoom: 100}
	v.Resize(width, height)
	return v
}

// Resize updates the logical size from a new device size. The logical
// dimensions scale with zoom so the visible world area grows as the
// view zooms out.
func (v *Viewport) Resize(width, height int) {
	v.width = float64(width) * 100 / float64(v.zoom)
	v.height = float64(height) * 100 / float64(v.zoom)
}

// SetZoom clamps and applies a new zoom percentage, preserving the
// current device size.
func (v *Viewport) SetZoom(zoom int) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	deviceW := v.width * float64(v.zoom) / 100
	deviceH := v.height * float64(v.zoom) / 100
	v.zoom = zoom
	v.width = deviceW * 100 / float64(zoom)
	v.height = deviceH * 100 / float64(zoom)
}

// Zoom returns the current zoom percentage.
func (v *Viewport) Zoom() int {
	return v.zoom
}

// Width returns the logical viewport width.
func (v *Viewport) Width() float64 {
	return v.width
}

// Height returns the logical viewport height.
func (v *Viewport) Height() float64 {
	return v.height
}

// Left returns the logical X of the left viewport edge.
func (v *Viewport) Left() float64 {
	return -v.width / 2
}

// Top returns the logical Y of the top viewport edge.
func (v *Viewport) Top() float64 {
	return -v.height / 2
}

// FromDevice converts a device-pixel position to logical coordinates.
func (v *Viewport) FromDevice(x, y int) (float64, float64) {
	return v.Left() + float64(x)*100/float64(v.zoom),
		v.Top() + float64(y)*100/float64(v.zoom)
}

// DeltaFromDevice converts a device-pixel motion delta to logical units,
// applying the zoom factor.
func (v *Viewport) DeltaFromDevice(dx, dy int) (float64, float64) {
	return float64(dx) * 100 / float64(v.zoom),
		float64(dy) * 100 / float64(v.zoom)
}

// FromNormalized converts a normalized [0,1] touch position to logical
// coordinates.
func (v *Viewport) FromNormalized(x, y float64) (float64, float64) {
	return (x - 0.5) * v.width, (y - 0.5) * v.height
}

// SpanFromNormalized converts a normalized touch motion delta to logical
// units. Touch deltas scale by viewport size only, not zoom; pointer
// drags go through DeltaFromDevice instead.
func (v *Viewport) SpanFromNormalized(dx, dy float64) (float64, float64) {
	return dx * v.width, dy * v.height
}

// ToDevice converts a logical position back to device pixels, for
// drawing code that works in logical space.
func (v *Viewport) ToDevice(x, y float64) (float64, float64) {
	return (x - v.Left()) * float64(v.zoom) / 100,
		(y - v.Top()) * float64(v.zoom) / 100
}

// Cursor returns the current pointer position in logical coordinates.
func (v *Viewport) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return v.FromDevice(x, y)
}
