package ui

import (
	"time"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
)

// Mapper converts raw backend coordinates into logical space. The
// frame loop supplies one; internal/screen provides the standard
// implementation.
type Mapper interface {
	// FromDevice converts a device-pixel position to logical space.
	FromDevice(x, y int) (float64, float64)

	// DeltaFromDevice converts a device-pixel motion delta to logical
	// units, applying the zoom factor.
	DeltaFromDevice(dx, dy int) (float64, float64)

	// FromNormalized converts a normalized [0,1] touch position to
	// logical space.
	FromNormalized(x, y float64) (float64, float64)

	// SpanFromNormalized converts a normalized touch delta to logical
	// units (size-scaled, not zoom-scaled).
	SpanFromNormalized(dx, dy float64) (float64, float64)

	// Cursor returns the current pointer position in logical space.
	Cursor() (float64, float64)
}

// UI owns the panel stack and routes events, steps and draws through it.
// All methods must be called from the single frame-loop goroutine.
type UI struct {
	mapper Mapper
	keys   *command.Keymap
	inject *command.Injector

	stack  []Panel
	toPush []Panel
	toPop  []Panel

	// Touch disambiguation state. Reset only by matching release
	// events, never by frame boundaries.
	zoneFinger  touchBinding
	panelFinger touchBinding
	lastTap     time.Time

	isDone  bool
	canSave bool
}

// New returns an empty panel stack. A nil keymap gets the defaults; a
// nil injector gets a fresh one.
func New(mapper Mapper, keys *command.Keymap, inject *command.Injector) *UI {
	if keys == nil {
		keys = command.NewKeymap()
	}
	if inject == nil {
		inject = &command.Injector{}
	}
	return &UI{
		mapper: mapper,
		keys:   keys,
		inject: inject,
	}
}

// Injector returns the command injection slot shared with the frame loop.
func (u *UI) Injector() *command.Injector {
	return u.inject
}

// Push binds the panel to this stack and queues it for addition at the
// next commit point. Multiple pushes before a commit are applied in
// call order, above whatever was already stacked.
func (u *UI) Push(p Panel) {
	if p == nil {
		return
	}
	p.SetUI(u)
	u.toPush = append(u.toPush, p)
}

// Pop queues the panel for removal at the next commit point. Safe to
// call from inside the panel's own event or step handler; the panel
// receives no further events once queued.
func (u *UI) Pop(p Panel) {
	u.toPop = append(u.toPop, p)
}

// PopThrough queues for removal every panel from the top of the stack
// down to and including the given panel. If the panel is not stacked,
// everything above where it would be - the whole stack - is queued.
func (u *UI) PopThrough(p Panel) {
	for i := len(u.stack) - 1; i >= 0; i-- {
		u.toPop = append(u.toPop, u.stack[i])
		if u.stack[i] == p {
			break
		}
	}
}

// commit applies queued pushes, then queued pops, then clears both
// queues. Called only at the two defined commit points.
func (u *UI) commit() {
	for _, p := range u.toPush {
		if p != nil {
			u.stack = append(u.stack, p)
		}
	}
	u.toPush = u.toPush[:0]

	for _, target := range u.toPop {
		for i, p := range u.stack {
			if p == target {
				u.stack = append(u.stack[:i], u.stack[i+1:]...)
				break
			}
		}
	}
	u.toPop = u.toPop[:0]
}

// pendingPop reports whether the panel is queued for removal.
func (u *UI) pendingPop(p Panel) bool {
	for _, target := range u.toPop {
		if target == p {
			return true
		}
	}
	return false
}

// IsTop reports whether the panel is the committed top of the stack.
// Panels pushed since the last commit are deliberately not considered.
func (u *UI) IsTop(p Panel) bool {
	return len(u.stack) > 0 && u.stack[len(u.stack)-1] == p
}

// Top returns the logical top panel, including panels pushed since the
// last commit. Returns nil if no panel is active.
func (u *UI) Top() Panel {
	if len(u.toPush) > 0 {
		return u.toPush[len(u.toPush)-1]
	}
	if len(u.stack) > 0 {
		return u.stack[len(u.stack)-1]
	}
	return nil
}

// Root returns the logical bottom panel, or nil if no panel is active.
func (u *UI) Root() Panel {
	if len(u.stack) > 0 {
		return u.stack[0]
	}
	if len(u.toPush) > 0 {
		return u.toPush[0]
	}
	return nil
}

// IsEmpty reports whether no panels are stacked or queued for pushing.
func (u *UI) IsEmpty() bool {
	return len(u.stack) == 0 && len(u.toPush) == 0
}

// Reset drops every panel, clears both mutation queues and clears the
// done flag. Used for hard restarts.
func (u *UI) Reset() {
	u.stack = u.stack[:0]
	u.toPush = u.toPush[:0]
	u.toPop = u.toPop[:0]
	u.isDone = false
}

// Quit marks the UI as done. The flag never auto-clears.
func (u *UI) Quit() {
	u.isDone = true
}

// IsDone reports whether Quit has been requested.
func (u *UI) IsDone() bool {
	return u.isDone
}

// SetCanSave records whether persisting the current state is valid.
func (u *UI) SetCanSave(canSave bool) {
	u.canSave = canSave
}

// CanSave reports whether persisting the current state is valid.
func (u *UI) CanSave() bool {
	return u.canSave
}

// Mouse returns the current pointer position in logical coordinates.
func (u *UI) Mouse() (float64, float64) {
	return u.mapper.Cursor()
}

// touchBinding is an optional touch-point binding; bound is false when
// no finger owns the role.
type touchBinding struct {
	id    input.TouchID
	bound bool
}

func (t *touchBinding) set(id input.TouchID) {
	t.id = id
	t.bound = true
}

func (t *touchBinding) clear() {
	t.bound = false
}

func (t touchBinding) is(id input.TouchID) bool {
	return t.bound && t.id == id
}
