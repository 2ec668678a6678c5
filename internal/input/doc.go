// Package input defines the normalized raw-event types produced by an
// input backend and consumed by the UI event router.
//
// Heterogeneous input sources (pointer, multi-touch, keyboard, platform
// gestures) are represented as a small closed set of event structs, each
// implementing the Event interface. The router classifies an event with a
// type switch; anything it does not recognize is silently ignored.
//
// Pointer events carry device-pixel coordinates; touch events carry
// normalized [0,1] coordinates plus a stable per-finger TouchID. Neither
// is in logical application space - conversion is the router's job, via
// its coordinate mapper.
package input
