package ui

import (
	"time"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
)

// doubleTapWindow is the longest gap between taps that still counts as
// a double tap when synthesizing clicks from touch input.
const doubleTapWindow = 500 * time.Millisecond

// Handle delivers one raw event to the stack. The committed stack is
// walked top-down; each panel gets the event until one handles it or a
// trapping panel is reached. Panels queued for popping are skipped
// entirely. Mutations queued during the walk are committed before
// returning. Reports whether any panel handled the event.
func (u *UI) Handle(ev input.Event) bool {
	handled := false

	for i := len(u.stack) - 1; i >= 0 && !handled; i-- {
		p := u.stack[i]

		// Panels about to be popped cannot handle any other events.
		if u.pendingPop(p) {
			continue
		}

		switch ev := ev.(type) {
		case *input.PointerMove:
			if ev.Buttons.Has(input.ButtonPrimary) {
				dx, dy := u.mapper.DeltaFromDevice(ev.DX, ev.DY)
				handled = p.Drag(dx, dy)
			} else {
				x, y := u.mapper.FromDevice(ev.X, ev.Y)
				handled = p.Hover(x, y)
			}

		case *input.PointerButton:
			x, y := u.mapper.FromDevice(ev.X, ev.Y)
			if ev.Pressed {
				switch ev.Button {
				case input.ButtonPrimary:
					handled = p.ZoneMouseDown(x, y)
					if !handled {
						handled = p.Click(x, y, ev.Clicks)
					}
				case input.ButtonSecondary:
					handled = p.RClick(x, y)
				}
			} else {
				handled = p.ZoneMouseUp(x, y)
				if !handled {
					handled = p.Release(x, y)
				}
			}

		case *input.Wheel:
			handled = p.Scroll(ev.DX, ev.DY)

		case *input.TouchDown:
			handled = u.touchDown(p, ev)

		case *input.TouchMove:
			handled = u.touchMove(p, ev)

		case *input.TouchUp:
			handled = u.touchUp(p, ev)

		case *input.KeyDown:
			cmd := u.keys.Command(ev.Key, ev.Mods)
			handled = p.KeyDown(ev.Key, ev.Mods, cmd, !ev.Repeat)

		case *command.Event:
			if ev.Pressed {
				handled = p.KeyDown(input.KeyNone, input.ModNone, ev.Command, true)
			}

		case *input.GestureEvent:
			handled = p.Gesture(ev.Kind)
			if !handled {
				// The panel does not want the gesture; convert it to a
				// command, queue one redelivery, and offer the command
				// to the same panel right away.
				if cmd := u.keys.GestureCommand(ev.Kind); !cmd.IsEmpty() {
					u.inject.InjectOnce(cmd)
					handled = p.KeyDown(input.KeyNone, input.ModNone, cmd, true)
				}
			}
		}

		// If this panel does not want anything below it to receive
		// events, stop the walk here.
		if p.TrapAllEvents() {
			break
		}
	}

	u.commit()
	return handled
}

// touchDown offers a touch contact to one panel. Zones win first, then
// the panel's own touch controls (with a hover so drag-capable panels
// have a baseline), then a synthesized click with tap-gap click count.
func (u *UI) touchDown(p Panel, ev *input.TouchDown) bool {
	x, y := u.mapper.FromNormalized(ev.X, ev.Y)

	if p.ZoneMouseDown(x, y) {
		u.zoneFinger.set(ev.ID)
		return true
	}

	p.Hover(x, y)
	if p.FingerDown(x, y, ev.ID) {
		return true
	}

	now := ev.When()
	if now.IsZero() {
		now = time.Now()
	}
	clicks := 1
	if !u.lastTap.IsZero() && now.Sub(u.lastTap) <= doubleTapWindow {
		clicks = 2
	}
	handled := p.Click(x, y, clicks)
	if handled {
		u.panelFinger.set(ev.ID)
	}
	u.lastTap = now
	return handled
}

// touchMove offers touch motion to one panel: its own touch controls
// first, then a drag if this finger previously claimed the panel. The
// drag delta is size-scaled only; zoom deliberately does not apply.
func (u *UI) touchMove(p Panel, ev *input.TouchMove) bool {
	x, y := u.mapper.FromNormalized(ev.X, ev.Y)

	if p.FingerMove(x, y, ev.ID) {
		return true
	}
	if u.panelFinger.is(ev.ID) {
		dx, dy := u.mapper.SpanFromNormalized(ev.DX, ev.DY)
		return p.Drag(dx, dy)
	}
	return false
}

// touchUp offers a touch release to one panel, mirroring the down
// ordering. Finger bindings are cleared by the matching release.
func (u *UI) touchUp(p Panel, ev *input.TouchUp) bool {
	x, y := u.mapper.FromNormalized(ev.X, ev.Y)

	if u.zoneFinger.is(ev.ID) {
		handled := p.ZoneMouseUp(x, y)
		u.zoneFinger.clear()
		if handled {
			return true
		}
	}
	if p.FingerUp(x, y, ev.ID) {
		return true
	}
	if u.panelFinger.is(ev.ID) {
		handled := p.Release(x, y)
		u.panelFinger.clear()
		return handled
	}
	return false
}
