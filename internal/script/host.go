// Package script embeds a small Lua runtime so an init script can add
// key bindings and observe commands without rebuilding the application.
//
// Scripts see a single `driftline` module:
//
//	driftline.bind("ctrl+p", "menu")
//	driftline.bind_gesture("swipe-up", "help")
//	driftline.on_command("save", function() ... end)
package script

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/input"
)

// ErrClosed is returned when a closed host is used.
var ErrClosed = errors.New("script host is closed")

type keyBinding struct {
	key  input.Key
	mods input.Modifier
	cmd  command.Command
}

type gestureBinding struct {
	kind input.GestureKind
	cmd  command.Command
}

// Host owns one Lua state and the bindings and handlers a script
// registered. Lua states are not goroutine-safe; all calls must come
// from the frame-loop goroutine.
type Host struct {
	mu sync.Mutex

	id    uuid.UUID
	state *lua.LState

	keys     []keyBinding
	gestures []gestureBinding
	handlers map[command.Command][]*lua.LFunction

	closed bool
}

// NewHost creates a script host with the driftline module registered.
func NewHost() *Host {
	h := &Host{
		id:       uuid.New(),
		state:    lua.NewState(),
		handlers: make(map[command.Command][]*lua.LFunction),
	}
	h.state.PreloadModule("driftline", h.moduleLoader)
	return h
}

// ID returns the host's instance identifier, used for log correlation.
func (h *Host) ID() uuid.UUID {
	return h.id
}

// LoadFile runs a Lua init script. A missing file is not an error.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// Apply installs the script's collected key and gesture bindings into
// the keymap.
func (h *Host) Apply(km *command.Keymap) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, b := range h.keys {
		km.Bind(b.key, b.mods, b.cmd)
	}
	for _, b := range h.gestures {
		km.BindGesture(b.kind, b.cmd)
	}
}

// Notify invokes every handler registered for an action contained in
// cmd. Handler errors are returned joined; later handlers still run.
func (h *Host) Notify(cmd command.Command) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || cmd.IsEmpty() {
		return nil
	}

	var errs []error
	for registered, fns := range h.handlers {
		if !cmd.Has(registered) {
			continue
		}
		for _, fn := range fns {
			err := h.state.CallByParam(lua.P{
				Fn:      fn,
				NRet:    0,
				Protect: true,
			})
			if err != nil {
				errs = append(errs, fmt.Errorf("command handler %s: %w", registered, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}

// moduleLoader builds the driftline Lua module.
func (h *Host) moduleLoader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"bind":         h.luaBind,
		"bind_gesture": h.luaBindGesture,
		"on_command":   h.luaOnCommand,
	})
	L.Push(mod)
	return 1
}

func (h *Host) luaBind(L *lua.LState) int {
	chordStr := L.CheckString(1)
	cmdName := L.CheckString(2)

	key, mods, err := command.ParseChord(chordStr)
	if err != nil {
		L.RaiseError("bind: %v", err)
		return 0
	}
	cmd := command.Parse(cmdName)
	if cmd == command.None {
		L.RaiseError("bind: unknown command %q", cmdName)
		return 0
	}
	h.keys = append(h.keys, keyBinding{key: key, mods: mods, cmd: cmd})
	return 0
}

func (h *Host) luaBindGesture(L *lua.LState) int {
	gestureName := L.CheckString(1)
	cmdName := L.CheckString(2)

	kind := input.ParseGesture(gestureName)
	if kind == input.GestureNone {
		L.RaiseError("bind_gesture: unknown gesture %q", gestureName)
		return 0
	}
	cmd := command.Parse(cmdName)
	if cmd == command.None {
		L.RaiseError("bind_gesture: unknown command %q", cmdName)
		return 0
	}
	h.gestures = append(h.gestures, gestureBinding{kind: kind, cmd: cmd})
	return 0
}

func (h *Host) luaOnCommand(L *lua.LState) int {
	cmdName := L.CheckString(1)
	fn := L.CheckFunction(2)

	cmd := command.Parse(cmdName)
	if cmd == command.None {
		L.RaiseError("on_command: unknown command %q", cmdName)
		return 0
	}
	h.handlers[cmd] = append(h.handlers[cmd], fn)
	return 0
}
