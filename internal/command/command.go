package command

import "strings"

// Command is a set of domain actions, represented as a bitmask so a
// single key or gesture can raise several actions at once.
type Command uint64

const (
	// None is the empty command.
	None Command = 0

	// Menu opens or toggles the main menu.
	Menu Command = 1 << iota
	// Back dismisses the active surface or steps back.
	Back
	// Select activates the focused element.
	Select
	// ZoomIn increases the view zoom.
	ZoomIn
	// ZoomOut decreases the view zoom.
	ZoomOut
	// PageUp scrolls a page up.
	PageUp
	// PageDown scrolls a page down.
	PageDown
	// Save requests a save of the current state.
	Save
	// Quit requests application shutdown.
	Quit
	// Help opens contextual help.
	Help
)

var commandNames = []struct {
	cmd  Command
	name string
}{
	{Menu, "menu"},
	{Back, "back"},
	{Select, "select"},
	{ZoomIn, "zoom-in"},
	{ZoomOut, "zoom-out"},
	{PageUp, "page-up"},
	{PageDown, "page-down"},
	{Save, "save"},
	{Quit, "quit"},
	{Help, "help"},
}

// Has reports whether c contains every action in cmd.
func (c Command) Has(cmd Command) bool {
	return cmd != None && c&cmd == cmd
}

// Or returns the union of c and cmd.
func (c Command) Or(cmd Command) Command {
	return c | cmd
}

// IsEmpty reports whether c carries no actions.
func (c Command) IsEmpty() bool {
	return c == None
}

// String returns the names of the contained actions, joined with "|".
func (c Command) String() string {
	if c == None {
		return "none"
	}
	var parts []string
	for _, cn := range commandNames {
		if c.Has(cn.cmd) {
			parts = append(parts, cn.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Parse resolves a command name to its Command value. Returns None if
// the name is not recognized.
func Parse(name string) Command {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cn := range commandNames {
		if cn.name == name {
			return cn.cmd
		}
	}
	return None
}
