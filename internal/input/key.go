package input

import (
	"strings"
	"unicode"
)

// Key identifies a physical key, independent of the input backend.
type Key int

// KeyNone is the zero Key, used for synthesized key events that carry
// only a command.
const KeyNone Key = 0

// Printable keys use their lowercase rune value, so Key('a') is the A
// key. Special keys live above the Unicode range.
const (
	KeyEscape Key = 0x110000 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyArrowDown
	KeyLeft
	KeyRight
	KeySpace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyUp:        "up",
	KeyArrowDown: "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	// Common aliases.
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	return m
}()

// String returns the canonical lowercase name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > KeyNone && k < 0x110000 {
		return string(rune(k))
	}
	return "none"
}

// IsRune reports whether the key is a printable character key.
func (k Key) IsRune() bool {
	return k > KeyNone && k < 0x110000 && unicode.IsPrint(rune(k))
}

// ParseKey parses a key name as used in keymap files. Single printable
// characters parse as rune keys; anything else must be a named special
// key ("escape", "enter", "f5", ...). Returns KeyNone if the name is
// not recognized.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KeyNone
	}
	if k, ok := namedKeys[name]; ok {
		return k
	}
	runes := []rune(name)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return Key(unicode.ToLower(runes[0]))
	}
	return KeyNone
}
