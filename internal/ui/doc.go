// Package ui implements the panel stack: an ordered collection of
// interactive surfaces, the router that delivers raw input events to
// them, and the per-frame step/draw driver.
//
// # Stack discipline
//
// The stack is never mutated while it is being walked. Push, Pop and
// PopThrough only queue mutations; the queues are committed at exactly
// two points - the start of StepAll and the end of Handle. This makes it
// safe for a panel to pop itself (or push a successor) from inside its
// own event or step handler. A panel queued for popping is treated as
// already gone by the router: it receives no further events even though
// it stays in the stack until the next commit.
//
// # Event routing
//
// Handle walks the committed stack top-down, normalizing each raw event
// into panel capability calls. The walk stops when a panel handles the
// event, or when it passes a panel that traps all events. Full-screen
// panels cull drawing below them but never event propagation.
//
// Everything in this package runs on the single frame-loop goroutine;
// there is no locking and no blocking call.
package ui
