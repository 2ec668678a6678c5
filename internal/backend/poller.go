package backend

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/kdriscoll/driftline/internal/input"
)

// Key auto-repeat timing, in ticks. Ebitengine does not synthesize OS
// key repeats, so the poller does.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// Double-click detection for the mouse path.
const (
	doubleClickGap      = 400 * time.Millisecond
	doubleClickDistance = 8
)

// Poller diffs Ebitengine input state into raw events, once per tick.
type Poller struct {
	width, height int

	cursorX, cursorY int
	cursorKnown      bool

	clicks  *clickTracker
	touches map[input.TouchID]*touchTrack
	gesture recognizer

	// scratch buffers reused across ticks
	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
}

// NewPoller returns a poller for a screen of the given device size.
func NewPoller(width, height int) *Poller {
	return &Poller{
		width:   width,
		height:  height,
		clicks:  newClickTracker(doubleClickGap, doubleClickDistance),
		touches: make(map[input.TouchID]*touchTrack),
	}
}

// SetSize updates the device size used to normalize touch coordinates.
func (p *Poller) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Poll reads the current input state and returns the events that
// occurred since the previous tick, in a stable order: pointer, wheel,
// touch, gestures, keys.
func (p *Poller) Poll(now time.Time) []input.Event {
	var events []input.Event
	events = p.pollPointer(events, now)
	events = p.pollWheel(events, now)
	events = p.pollTouches(events, now)
	events = p.pollKeys(events, now)
	return events
}

func (p *Poller) pollPointer(events []input.Event, now time.Time) []input.Event {
	x, y := ebiten.CursorPosition()
	if p.cursorKnown && (x != p.cursorX || y != p.cursorY) {
		ev := &input.PointerMove{
			X: x, Y: y,
			DX: x - p.cursorX, DY: y - p.cursorY,
			Buttons: heldButtons(),
		}
		ev.SetTime(now)
		events = append(events, ev)
	}
	p.cursorX, p.cursorY = x, y
	p.cursorKnown = true

	for _, mb := range []struct {
		eb  ebiten.MouseButton
		btn input.Button
	}{
		{ebiten.MouseButtonLeft, input.ButtonPrimary},
		{ebiten.MouseButtonMiddle, input.ButtonMiddle},
		{ebiten.MouseButtonRight, input.ButtonSecondary},
	} {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			clicks := 0
			if mb.btn == input.ButtonPrimary {
				clicks = p.clicks.record(x, y, now)
			} else {
				clicks = 1
			}
			ev := &input.PointerButton{X: x, Y: y, Button: mb.btn, Pressed: true, Clicks: clicks}
			ev.SetTime(now)
			events = append(events, ev)
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			ev := &input.PointerButton{X: x, Y: y, Button: mb.btn, Pressed: false}
			ev.SetTime(now)
			events = append(events, ev)
		}
	}
	return events
}

func (p *Poller) pollWheel(events []input.Event, now time.Time) []input.Event {
	dx, dy := ebiten.Wheel()
	if dx != 0 || dy != 0 {
		ev := &input.Wheel{DX: dx, DY: dy}
		ev.SetTime(now)
		events = append(events, ev)
	}
	return events
}

func (p *Poller) pollTouches(events []input.Event, now time.Time) []input.Event {
	w, h := float64(p.width), float64(p.height)
	if w <= 0 || h <= 0 {
		return events
	}

	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		px, py := ebiten.TouchPosition(id)
		nx, ny := float64(px)/w, float64(py)/h
		p.touches[input.TouchID(id)] = &touchTrack{
			startX: nx, startY: ny,
			lastX: nx, lastY: ny,
			start: now,
		}
		ev := &input.TouchDown{ID: input.TouchID(id), X: nx, Y: ny}
		ev.SetTime(now)
		events = append(events, ev)
	}

	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		track, ok := p.touches[input.TouchID(id)]
		if !ok {
			continue
		}
		px, py := ebiten.TouchPosition(id)
		nx, ny := float64(px)/w, float64(py)/h
		if nx != track.lastX || ny != track.lastY {
			ev := &input.TouchMove{
				ID: input.TouchID(id),
				X:  nx, Y: ny,
				DX: nx - track.lastX, DY: ny - track.lastY,
			}
			ev.SetTime(now)
			events = append(events, ev)
			track.lastX, track.lastY = nx, ny
		}
	}

	// Pinch runs on the live spread while exactly two fingers are down.
	if len(p.touchBuf) == 2 {
		a := p.touches[input.TouchID(p.touchBuf[0])]
		b := p.touches[input.TouchID(p.touchBuf[1])]
		if a != nil && b != nil {
			if kind := p.gesture.pinch(spreadBetween(*a, *b)); kind != input.GestureNone {
				ev := &input.GestureEvent{Kind: kind}
				ev.SetTime(now)
				events = append(events, ev)
			}
		}
	} else {
		p.gesture.endPinch()
	}

	p.touchBuf = inpututil.AppendJustReleasedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		track, ok := p.touches[input.TouchID(id)]
		if !ok {
			continue
		}
		ev := &input.TouchUp{ID: input.TouchID(id), X: track.lastX, Y: track.lastY}
		ev.SetTime(now)
		events = append(events, ev)

		if kind := p.gesture.swipe(*track, now); kind != input.GestureNone {
			gev := &input.GestureEvent{Kind: kind}
			gev.SetTime(now)
			events = append(events, gev)
		}
		delete(p.touches, input.TouchID(id))
	}
	return events
}

func (p *Poller) pollKeys(events []input.Event, now time.Time) []input.Event {
	mods := pressedModifiers()

	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, ek := range p.keyBuf {
		key, ok := translateKey(ek)
		if !ok {
			continue
		}
		ev := &input.KeyDown{Key: key, Mods: mods}
		ev.SetTime(now)
		events = append(events, ev)
	}

	p.keyBuf = inpututil.AppendPressedKeys(p.keyBuf[:0])
	for _, ek := range p.keyBuf {
		d := inpututil.KeyPressDuration(ek)
		if d < repeatDelay || (d-repeatDelay)%repeatInterval != 0 {
			continue
		}
		key, ok := translateKey(ek)
		if !ok {
			continue
		}
		ev := &input.KeyDown{Key: key, Mods: mods, Repeat: true}
		ev.SetTime(now)
		events = append(events, ev)
	}
	return events
}

func heldButtons() input.ButtonMask {
	var mask input.ButtonMask
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mask |= input.ButtonPrimary.Mask()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		mask |= input.ButtonMiddle.Mask()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		mask |= input.ButtonSecondary.Mask()
	}
	return mask
}
