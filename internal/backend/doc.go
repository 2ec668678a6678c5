// Package backend adapts Ebitengine's polled input state into the
// router's raw event stream.
//
// Ebitengine exposes input as per-tick state queries rather than an
// event queue, so the Poller diffs state between ticks: cursor motion
// becomes pointer-move events, button edges become press/release events
// with consecutive-click counts, touch contacts are tracked per finger
// and released touches are fed through a gesture recognizer that emits
// swipe and pinch events.
package backend
