package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kdriscoll/driftline/internal/input"
)

// Sentinel errors for keymap loading.
var (
	// ErrBadChord is returned when a chord string cannot be parsed.
	ErrBadChord = errors.New("unparseable key chord")

	// ErrBadCommand is returned when a command name is not recognized.
	ErrBadCommand = errors.New("unknown command name")

	// ErrBadGesture is returned when a gesture name is not recognized.
	ErrBadGesture = errors.New("unknown gesture name")
)

// keymapFile is the on-disk TOML shape of a keymap overlay.
type keymapFile struct {
	Bindings map[string]string `toml:"bindings"`
	Gestures map[string]string `toml:"gestures"`
}

// LoadFile overlays bindings from a TOML keymap file onto the defaults,
// replacing the keymap's current contents. A missing file leaves the
// keymap unchanged and is not an error.
func (km *Keymap) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading keymap file %s: %w", path, err)
	}
	return km.Load(data)
}

// Load overlays bindings from TOML data onto the defaults, replacing
// the keymap's current contents.
func (km *Keymap) Load(data []byte) error {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decoding keymap: %w", err)
	}

	fresh := NewKeymap()
	for chordStr, cmdName := range file.Bindings {
		key, mods, err := ParseChord(chordStr)
		if err != nil {
			return err
		}
		cmd := Parse(cmdName)
		if cmd == None {
			return fmt.Errorf("%w: %q", ErrBadCommand, cmdName)
		}
		fresh.bindings[chord{key, mods}] = cmd
	}
	for gestureName, cmdName := range file.Gestures {
		kind := input.ParseGesture(gestureName)
		if kind == input.GestureNone {
			return fmt.Errorf("%w: %q", ErrBadGesture, gestureName)
		}
		cmd := Parse(cmdName)
		if cmd == None {
			return fmt.Errorf("%w: %q", ErrBadCommand, cmdName)
		}
		fresh.gestures[kind] = cmd
	}

	km.replace(fresh.bindings, fresh.gestures)
	return nil
}

// ParseChord parses a chord string like "ctrl+s", "escape" or
// "ctrl+shift+p" into a key and modifier set. The final segment is the
// key; every preceding segment must be a modifier name.
func ParseChord(s string) (input.Key, input.Modifier, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 {
		return input.KeyNone, input.ModNone, fmt.Errorf("%w: %q", ErrBadChord, s)
	}

	mods := input.ModNone
	for _, part := range parts[:len(parts)-1] {
		mod := input.ParseModifier(part)
		if mod == input.ModNone {
			return input.KeyNone, input.ModNone, fmt.Errorf("%w: %q", ErrBadChord, s)
		}
		mods = mods.With(mod)
	}

	key := input.ParseKey(parts[len(parts)-1])
	if key == input.KeyNone {
		return input.KeyNone, input.ModNone, fmt.Errorf("%w: %q", ErrBadChord, s)
	}
	return key, mods, nil
}
