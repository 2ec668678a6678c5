package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
)

// stubMapper is an identity device mapper with a recognizable
// normalized-space scale, so tests can tell the conversion paths apart.
type stubMapper struct{}

func (stubMapper) FromDevice(x, y int) (float64, float64)           { return float64(x), float64(y) }
func (stubMapper) DeltaFromDevice(dx, dy int) (float64, float64)    { return float64(dx) * 2, float64(dy) * 2 }
func (stubMapper) FromNormalized(x, y float64) (float64, float64)   { return x * 100, y * 100 }
func (stubMapper) SpanFromNormalized(dx, dy float64) (float64, float64) {
	return dx * 1000, dy * 1000
}
func (stubMapper) Cursor() (float64, float64) { return 42, 24 }

// stubPanel records every capability call it receives and reports
// handled according to its per-call configuration.
type stubPanel struct {
	Base
	name    string
	calls   []string
	handled map[string]bool
}

func newStub(name string) *stubPanel {
	s := &stubPanel{name: name, handled: make(map[string]bool)}
	s.SetTrapAllEvents(false)
	return s
}

func (p *stubPanel) mark(call, kind string) bool {
	p.calls = append(p.calls, call)
	return p.handled[kind]
}

func (p *stubPanel) Hover(x, y float64) bool {
	return p.mark(fmt.Sprintf("hover(%g,%g)", x, y), "hover")
}

func (p *stubPanel) Drag(dx, dy float64) bool {
	return p.mark(fmt.Sprintf("drag(%g,%g)", dx, dy), "drag")
}

func (p *stubPanel) Click(x, y float64, clicks int) bool {
	return p.mark(fmt.Sprintf("click(%g,%g,%d)", x, y, clicks), "click")
}

func (p *stubPanel) RClick(x, y float64) bool {
	return p.mark(fmt.Sprintf("rclick(%g,%g)", x, y), "rclick")
}

func (p *stubPanel) Release(x, y float64) bool {
	return p.mark(fmt.Sprintf("release(%g,%g)", x, y), "release")
}

func (p *stubPanel) Scroll(dx, dy float64) bool {
	return p.mark(fmt.Sprintf("scroll(%g,%g)", dx, dy), "scroll")
}

func (p *stubPanel) ZoneMouseDown(x, y float64) bool {
	return p.mark(fmt.Sprintf("zonedown(%g,%g)", x, y), "zonedown")
}

func (p *stubPanel) ZoneMouseUp(x, y float64) bool {
	return p.mark(fmt.Sprintf("zoneup(%g,%g)", x, y), "zoneup")
}

func (p *stubPanel) FingerDown(x, y float64, id input.TouchID) bool {
	return p.mark(fmt.Sprintf("fingerdown(%g,%g,%d)", x, y, id), "fingerdown")
}

func (p *stubPanel) FingerMove(x, y float64, id input.TouchID) bool {
	return p.mark(fmt.Sprintf("fingermove(%g,%g,%d)", x, y, id), "fingermove")
}

func (p *stubPanel) FingerUp(x, y float64, id input.TouchID) bool {
	return p.mark(fmt.Sprintf("fingerup(%g,%g,%d)", x, y, id), "fingerup")
}

func (p *stubPanel) Gesture(kind input.GestureKind) bool {
	return p.mark(fmt.Sprintf("gesture(%s)", kind), "gesture")
}

func (p *stubPanel) KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool {
	return p.mark(fmt.Sprintf("key(%s,%s,%t)", key, cmd, isFirstPress), "key")
}

func (p *stubPanel) Step() {
	p.calls = append(p.calls, "step")
}

func (p *stubPanel) Draw(dst *ebiten.Image) {
	p.calls = append(p.calls, "draw")
}

func (p *stubPanel) ClearZones() {
	p.calls = append(p.calls, "clearzones")
}

func (p *stubPanel) drain() []string {
	calls := p.calls
	p.calls = nil
	return calls
}

// pushCommitted pushes panels and commits them so they are stacked.
func pushCommitted(u *UI, panels ...Panel) {
	for _, p := range panels {
		u.Push(p)
	}
	u.StepAll()
	for _, p := range panels {
		if sp, ok := p.(*stubPanel); ok {
			sp.calls = nil
		}
	}
}

func newTestUI() *UI {
	return New(stubMapper{}, nil, nil)
}
