package app

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
	"github.com/kdriscoll/driftline/internal/screen"
	"github.com/kdriscoll/driftline/internal/ui"
)

const sceneStars = 240

type star struct {
	x, y  float64
	speed float64
	size  float32
	clr   color.RGBA
}

// ScenePanel is the full-screen root panel: a drifting starfield that
// can be panned by dragging and responds to the application commands.
type ScenePanel struct {
	ui.Base

	view *screen.Viewport
	log  *Logger

	stars      []star
	offX, offY float64
}

// NewScenePanel creates the root scene.
func NewScenePanel(view *screen.Viewport, log *Logger) *ScenePanel {
	if log == nil {
		log = NullLogger
	}
	s := &ScenePanel{
		view: view,
		log:  log,
	}
	s.SetFullScreen(true)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < sceneStars; i++ {
		hue := 180 + rng.Float64()*80
		c := colorful.Hsv(hue, 0.15+rng.Float64()*0.3, 0.55+rng.Float64()*0.45)
		r, g, b := c.RGB255()
		s.stars = append(s.stars, star{
			x:     rng.Float64(),
			y:     rng.Float64(),
			speed: 0.0002 + rng.Float64()*0.0012,
			size:  float32(1 + rng.Intn(3)),
			clr:   color.RGBA{R: r, G: g, B: b, A: 255},
		})
	}
	return s
}

// Step drifts the starfield.
func (s *ScenePanel) Step() {
	for i := range s.stars {
		s.stars[i].x -= s.stars[i].speed
		if s.stars[i].x < 0 {
			s.stars[i].x += 1
		}
	}
}

// Drag pans the view.
func (s *ScenePanel) Drag(dx, dy float64) bool {
	s.offX += dx
	s.offY += dy
	return true
}

// Click captures the press so a following drag or release lands here.
func (s *ScenePanel) Click(x, y float64, clicks int) bool {
	if clicks >= 2 {
		s.offX, s.offY = 0, 0
	}
	return true
}

// Release ends a pan.
func (s *ScenePanel) Release(x, y float64) bool {
	return true
}

// Scroll pans the view by wheel motion.
func (s *ScenePanel) Scroll(dx, dy float64) bool {
	s.offX += dx * 20
	s.offY += dy * 20
	return true
}

// KeyDown reacts to the domain commands bound to the pressed key.
func (s *ScenePanel) KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool {
	switch {
	case cmd.Has(command.Quit):
		s.UI().Quit()
	case cmd.Has(command.Menu):
		if isFirstPress {
			s.UI().Push(NewMenuPanel(s.view, s))
		}
	case cmd.Has(command.Help):
		if isFirstPress {
			s.UI().Push(NewDialogPanel(s.view))
		}
	case cmd.Has(command.ZoomIn):
		s.view.SetZoom(s.view.Zoom() + 25)
	case cmd.Has(command.ZoomOut):
		s.view.SetZoom(s.view.Zoom() - 25)
	case cmd.Has(command.PageUp):
		s.offY += s.view.Height() / 2
	case cmd.Has(command.PageDown):
		s.offY -= s.view.Height() / 2
	case cmd.Has(command.Save):
		if s.UI().CanSave() {
			s.log.Info("save requested")
		} else {
			s.log.Warn("save requested before saving is valid")
		}
	default:
		return false
	}
	return true
}

// Draw renders the starfield, offset by the current pan.
func (s *ScenePanel) Draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 6, G: 8, B: 16, A: 255})

	w := s.view.Width()
	h := s.view.Height()
	for _, st := range s.stars {
		lx := wrap(st.x*w+s.offX+s.view.Left(), s.view.Left(), w)
		ly := wrap(st.y*h+s.offY+s.view.Top(), s.view.Top(), h)
		dx, dy := s.view.ToDevice(lx, ly)
		vector.DrawFilledRect(dst, float32(dx), float32(dy), st.size, st.size, st.clr, false)
	}
}

// wrap folds v into [min, min+span).
func wrap(v, min, span float64) float64 {
	for v < min {
		v += span
	}
	for v >= min+span {
		v -= span
	}
	return v
}
