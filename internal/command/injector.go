package command

import (
	"time"

	"github.com/kdriscoll/driftline/internal/input"
)

// Event is a synthesized command event, delivered to the router when a
// command is raised outside normal key handling (one-shot injection or
// a scripted trigger).
type Event struct {
	input.EventTime

	// Command is the command to deliver.
	Command Command

	// Pressed is true for the press phase. The router only dispatches
	// pressed command events.
	Pressed bool
}

// NewEvent returns a pressed command event stamped with the current time.
func NewEvent(cmd Command) *Event {
	ev := &Event{Command: cmd, Pressed: true}
	ev.SetTime(time.Now())
	return ev
}

// Injector is a single-slot side channel for one-shot command delivery.
// A command stored with InjectOnce is consumed by the next Take, which
// the frame loop turns into a command event for the router. A second
// InjectOnce before the slot is drained overwrites the first.
//
// The injector is owned by the frame loop goroutine; it needs no lock.
type Injector struct {
	next    Command
	pending bool
}

// InjectOnce stores a command for one future delivery.
func (in *Injector) InjectOnce(cmd Command) {
	in.next = cmd
	in.pending = true
}

// Take returns the stored command, if any, and clears the slot.
func (in *Injector) Take() (Command, bool) {
	if !in.pending {
		return None, false
	}
	cmd := in.next
	in.next = None
	in.pending = false
	return cmd, true
}
