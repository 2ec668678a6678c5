package command

import (
	"sync"

	"github.com/kdriscoll/driftline/internal/input"
)

// chord is a key plus the modifiers that must accompany it.
type chord struct {
	key  input.Key
	mods input.Modifier
}

// Keymap resolves raw keys and gestures to commands.
//
// Lookups happen on the frame loop; rebinds can arrive from a file
// watcher goroutine, so access is guarded.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[chord]Command
	gestures map[input.GestureKind]Command
}

// NewKeymap returns a keymap populated with the default bindings.
func NewKeymap() *Keymap {
	km := &Keymap{
		bindings: make(map[chord]Command),
		gestures: make(map[input.GestureKind]Command),
	}
	km.applyDefaults()
	return km
}

func (km *Keymap) applyDefaults() {
	defaults := []struct {
		key  input.Key
		mods input.Modifier
		cmd  Command
	}{
		{input.KeyEscape, input.ModNone, Menu},
		{input.KeyBackspace, input.ModNone, Back},
		{input.KeyEnter, input.ModNone, Select},
		{input.KeySpace, input.ModNone, Select},
		{input.KeyPageUp, input.ModNone, PageUp},
		{input.KeyPageDown, input.ModNone, PageDown},
		{input.Key('='), input.ModNone, ZoomIn},
		{input.Key('-'), input.ModNone, ZoomOut},
		{input.Key('s'), input.ModCtrl, Save},
		{input.Key('q'), input.ModCtrl, Quit},
		{input.KeyF1, input.ModNone, Help},
	}
	for _, d := range defaults {
		km.bindings[chord{d.key, d.mods}] = d.cmd
	}

	km.gestures[input.GestureSwipeLeft] = Back
	km.gestures[input.GestureSwipeRight] = Menu
	km.gestures[input.GesturePinchIn] = ZoomOut
	km.gestures[input.GesturePinchOut] = ZoomIn
}

// Bind maps a key chord to a command, replacing any existing binding.
func (km *Keymap) Bind(key input.Key, mods input.Modifier, cmd Command) {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.bindings[chord{key, mods}] = cmd
}

// BindGesture maps a gesture to a command, replacing any existing binding.
func (km *Keymap) BindGesture(kind input.GestureKind, cmd Command) {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.gestures[kind] = cmd
}

// Command resolves a key chord to its bound command. Shift alone does
// not distinguish printable keys, matching how the backend reports them.
// Returns None for unbound chords.
func (km *Keymap) Command(key input.Key, mods input.Modifier) Command {
	km.mu.RLock()
	defer km.mu.RUnlock()
	if cmd, ok := km.bindings[chord{key, mods}]; ok {
		return cmd
	}
	if key.IsRune() && mods == input.ModShift {
		return km.bindings[chord{key, input.ModNone}]
	}
	return None
}

// GestureCommand resolves a gesture to its bound command. Returns None
// for unbound gestures.
func (km *Keymap) GestureCommand(kind input.GestureKind) Command {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return km.gestures[kind]
}

// replace swaps in a complete new binding set.
func (km *Keymap) replace(bindings map[chord]Command, gestures map[input.GestureKind]Command) {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.bindings = bindings
	km.gestures = gestures
}
