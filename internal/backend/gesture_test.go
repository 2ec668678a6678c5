package backend

import (
	"testing"
	"time"

	"github.com/kdriscoll/driftline/internal/input"
)

func contact(x0, y0, x1, y1 float64, dur time.Duration) (touchTrack, time.Time) {
	start := time.Unix(100, 0)
	return touchTrack{
		startX: x0, startY: y0,
		lastX: x1, lastY: y1,
		start: start,
	}, start.Add(dur)
}

func TestSwipeClassification(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		dur            time.Duration
		want           input.GestureKind
	}{
		{"left", 0.8, 0.5, 0.4, 0.5, 200 * time.Millisecond, input.GestureSwipeLeft},
		{"right", 0.2, 0.5, 0.6, 0.5, 200 * time.Millisecond, input.GestureSwipeRight},
		{"up", 0.5, 0.8, 0.5, 0.4, 200 * time.Millisecond, input.GestureSwipeUp},
		{"down", 0.5, 0.2, 0.5, 0.6, 200 * time.Millisecond, input.GestureSwipeDown},
		{"too short", 0.5, 0.5, 0.55, 0.5, 200 * time.Millisecond, input.GestureNone},
		{"too slow", 0.2, 0.5, 0.6, 0.5, time.Second, input.GestureNone},
		{"diagonal", 0.2, 0.2, 0.6, 0.6, 200 * time.Millisecond, input.GestureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recognizer
			track, released := contact(tt.x0, tt.y0, tt.x1, tt.y1, tt.dur)
			if got := r.swipe(track, released); got != tt.want {
				t.Errorf("swipe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPinchOut(t *testing.T) {
	var r recognizer

	if got := r.pinch(0.1); got != input.GestureNone {
		t.Fatalf("first observation = %v, want none", got)
	}
	if got := r.pinch(0.11); got != input.GestureNone {
		t.Errorf("small spread change = %v, want none", got)
	}
	if got := r.pinch(0.2); got != input.GesturePinchOut {
		t.Errorf("spread growth = %v, want pinch-out", got)
	}
	// One pinch per session.
	if got := r.pinch(0.4); got != input.GestureNone {
		t.Errorf("second trigger in session = %v, want none", got)
	}
}

func TestPinchIn(t *testing.T) {
	var r recognizer

	r.pinch(0.3)
	if got := r.pinch(0.1); got != input.GesturePinchIn {
		t.Errorf("spread collapse = %v, want pinch-in", got)
	}
}

func TestEndPinchStartsNewSession(t *testing.T) {
	var r recognizer

	r.pinch(0.1)
	if got := r.pinch(0.3); got != input.GesturePinchOut {
		t.Fatalf("first session = %v, want pinch-out", got)
	}
	r.endPinch()

	// The next session re-baselines from its own first spread.
	if got := r.pinch(0.3); got != input.GestureNone {
		t.Errorf("new session baseline = %v, want none", got)
	}
	if got := r.pinch(0.6); got != input.GesturePinchOut {
		t.Errorf("new session trigger = %v, want pinch-out", got)
	}
}

func TestSpreadBetween(t *testing.T) {
	a := touchTrack{lastX: 0, lastY: 0}
	b := touchTrack{lastX: 0.3, lastY: 0.4}
	if got := spreadBetween(a, b); got != 0.5 {
		t.Errorf("spreadBetween = %g, want 0.5", got)
	}
}
