package backend

import (
	"math"
	"time"

	"github.com/kdriscoll/driftline/internal/input"
)

// Gesture recognition thresholds, in normalized screen units.
const (
	// swipeMinSpan is the minimum displacement for a swipe.
	swipeMinSpan = 0.12

	// swipeMaxDuration is the longest contact that still counts as a
	// swipe rather than a drag.
	swipeMaxDuration = 400 * time.Millisecond

	// swipeAxisRatio is how dominant the major axis must be.
	swipeAxisRatio = 2.0

	// pinchMinRatio is the spread change that triggers a pinch.
	pinchMinRatio = 1.25
)

// touchTrack is the per-finger history the recognizer works from.
type touchTrack struct {
	startX, startY float64
	lastX, lastY   float64
	start          time.Time
}

// recognizer turns raw touch history into swipe and pinch gestures.
type recognizer struct {
	// pinch session state: set while exactly two fingers are down.
	pinchBase  float64
	pinchLive  bool
	pinchFired bool
}

// swipe classifies a finished contact. Returns GestureNone when the
// contact was too slow, too short, or too diagonal.
func (r *recognizer) swipe(t touchTrack, released time.Time) input.GestureKind {
	if released.Sub(t.start) > swipeMaxDuration {
		return input.GestureNone
	}

	dx := t.lastX - t.startX
	dy := t.lastY - t.startY
	ax, ay := math.Abs(dx), math.Abs(dy)

	switch {
	case ax >= swipeMinSpan && ax >= ay*swipeAxisRatio:
		if dx < 0 {
			return input.GestureSwipeLeft
		}
		return input.GestureSwipeRight
	case ay >= swipeMinSpan && ay >= ax*swipeAxisRatio:
		if dy < 0 {
			return input.GestureSwipeUp
		}
		return input.GestureSwipeDown
	}
	return input.GestureNone
}

// pinch observes the spread between two live fingers and reports a
// pinch once per two-finger session, when the spread crosses the
// trigger ratio in either direction.
func (r *recognizer) pinch(spread float64) input.GestureKind {
	if !r.pinchLive {
		r.pinchLive = true
		r.pinchFired = false
		r.pinchBase = spread
		return input.GestureNone
	}
	if r.pinchFired || r.pinchBase == 0 {
		return input.GestureNone
	}

	switch {
	case spread >= r.pinchBase*pinchMinRatio:
		r.pinchFired = true
		return input.GesturePinchOut
	case spread <= r.pinchBase/pinchMinRatio:
		r.pinchFired = true
		return input.GesturePinchIn
	}
	return input.GestureNone
}

// endPinch closes the two-finger session.
func (r *recognizer) endPinch() {
	r.pinchLive = false
	r.pinchFired = false
	r.pinchBase = 0
}

func spreadBetween(a, b touchTrack) float64 {
	dx := a.lastX - b.lastX
	dy := a.lastY - b.lastY
	return math.Hypot(dx, dy)
}
