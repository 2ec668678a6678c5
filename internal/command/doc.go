// Package command defines domain commands and their construction from
// raw input.
//
// A Command is a set of domain-level actions decoupled from the physical
// input that produced it. Commands are constructed through a Keymap,
// which binds key chords ("ctrl+s", "escape") and gesture names
// ("swipe-left") to commands. The built-in defaults can be overlaid from
// a TOML file and hot-reloaded while the application runs.
//
// The package also provides the one-shot Injector: a single-slot side
// channel through which a command raised outside normal key handling
// (typically a gesture fallback) is redelivered to the event router as a
// synthetic command event on a later pass, instead of recursing into the
// dispatcher.
package command
