package ui

import (
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
)

// Panel is a stacked interactive surface. The stack holds panels
// polymorphically and calls into this capability set; every handler
// reports whether it consumed the event. Position-taking handlers
// receive logical-space coordinates.
//
// Panels must be pointer-backed: stack membership is tracked by
// identity, not value.
type Panel interface {
	// Hover reports pointer motion with no button held.
	Hover(x, y float64) bool

	// Drag reports pointer or touch motion with the primary button or a
	// captured finger held. Deltas are relative, not absolute positions.
	Drag(dx, dy float64) bool

	// Click reports a primary button press that no zone claimed.
	// clicks is the consecutive-click count (1 or 2).
	Click(x, y float64, clicks int) bool

	// RClick reports a secondary button press.
	RClick(x, y float64) bool

	// Release reports a primary button or captured finger release that
	// no zone claimed.
	Release(x, y float64) bool

	// Scroll reports wheel motion.
	Scroll(dx, dy float64) bool

	// ZoneMouseDown offers a press to the panel's registered zones.
	ZoneMouseDown(x, y float64) bool

	// ZoneMouseUp offers a release to the panel's registered zones.
	ZoneMouseUp(x, y float64) bool

	// FingerDown reports a touch contact, for panels with their own
	// touch controls.
	FingerDown(x, y float64, id input.TouchID) bool

	// FingerMove reports touch motion.
	FingerMove(x, y float64, id input.TouchID) bool

	// FingerUp reports a touch release.
	FingerUp(x, y float64, id input.TouchID) bool

	// Gesture reports a platform gesture.
	Gesture(kind input.GestureKind) bool

	// KeyDown reports a key press or a synthesized command. For
	// synthesized commands key and mods are zero. isFirstPress is false
	// for OS key-repeat events.
	KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool

	// Step advances the panel's state by one frame.
	Step()

	// Draw renders the panel.
	Draw(dst *ebiten.Image)

	// ClearZones invalidates all registered hit zones so the coming
	// draw pass can re-register them.
	ClearZones()

	// IsFullScreen reports whether the panel covers the whole screen,
	// making panels below it unnecessary to draw.
	IsFullScreen() bool

	// TrapAllEvents reports whether events stop at this panel instead
	// of propagating further down the stack.
	TrapAllEvents() bool

	// SetUI binds the panel to the stack that owns it, so it can
	// request its own removal or push successors.
	SetUI(u *UI)
}

// Base is an embeddable default Panel implementation. Every input
// handler reports unhandled, the panel traps events (most panels are
// modal), and it is not full-screen. Concrete panels override what they
// use and register hit zones through the embedded ZoneSet.
type Base struct {
	// Zones holds the panel's clickable zones.
	Zones ZoneSet

	ui         *UI
	id         uuid.UUID
	passEvents bool
	fullScreen bool
}

// SetUI records the owning stack.
func (b *Base) SetUI(u *UI) {
	b.ui = u
}

// UI returns the owning stack, or nil before the panel is pushed.
func (b *Base) UI() *UI {
	return b.ui
}

// ID returns a stable identifier for log correlation.
func (b *Base) ID() uuid.UUID {
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
	return b.id
}

// SetTrapAllEvents controls whether events propagate past this panel.
func (b *Base) SetTrapAllEvents(trap bool) {
	b.passEvents = !trap
}

// TrapAllEvents reports whether events stop at this panel.
func (b *Base) TrapAllEvents() bool {
	return !b.passEvents
}

// SetFullScreen marks the panel as covering the whole screen.
func (b *Base) SetFullScreen(full bool) {
	b.fullScreen = full
}

// IsFullScreen reports whether the panel covers the whole screen.
func (b *Base) IsFullScreen() bool {
	return b.fullScreen
}

// Hover implements Panel.
func (b *Base) Hover(x, y float64) bool { return false }

// Drag implements Panel.
func (b *Base) Drag(dx, dy float64) bool { return false }

// Click implements Panel.
func (b *Base) Click(x, y float64, clicks int) bool { return false }

// RClick implements Panel.
func (b *Base) RClick(x, y float64) bool { return false }

// Release implements Panel.
func (b *Base) Release(x, y float64) bool { return false }

// Scroll implements Panel.
func (b *Base) Scroll(dx, dy float64) bool { return false }

// ZoneMouseDown implements Panel by consulting the registered zones.
func (b *Base) ZoneMouseDown(x, y float64) bool {
	return b.Zones.Down(x, y)
}

// ZoneMouseUp implements Panel by consulting the registered zones.
func (b *Base) ZoneMouseUp(x, y float64) bool {
	return b.Zones.Up(x, y)
}

// FingerDown implements Panel.
func (b *Base) FingerDown(x, y float64, id input.TouchID) bool { return false }

// FingerMove implements Panel.
func (b *Base) FingerMove(x, y float64, id input.TouchID) bool { return false }

// FingerUp implements Panel.
func (b *Base) FingerUp(x, y float64, id input.TouchID) bool { return false }

// Gesture implements Panel.
func (b *Base) Gesture(kind input.GestureKind) bool { return false }

// KeyDown implements Panel.
func (b *Base) KeyDown(key input.Key, mods input.Modifier, cmd command.Command, isFirstPress bool) bool {
	return false
}

// Step implements Panel.
func (b *Base) Step() {}

// Draw implements Panel.
func (b *Base) Draw(dst *ebiten.Image) {}

// ClearZones implements Panel.
func (b *Base) ClearZones() {
	b.Zones.Clear()
}
