package backend

import "time"

// clickTracker tracks consecutive clicks for double-click detection.
// Ebitengine reports only button edges, so the backend has to derive
// the click count itself.
type clickTracker struct {
	maxGap      time.Duration
	maxDistance int

	lastX, lastY int
	lastTime     time.Time
	lastCount    int
}

func newClickTracker(maxGap time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{
		maxGap:      maxGap,
		maxDistance: maxDistance,
	}
}

// record registers a press and returns its click count (1 or 2; a
// third rapid click starts a new sequence).
func (t *clickTracker) record(x, y int, now time.Time) int {
	if now.IsZero() {
		now = time.Now()
	}

	if t.isSequel(x, y, now) {
		t.lastCount++
		if t.lastCount > 2 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastX, t.lastY = x, y
	t.lastTime = now
	return t.lastCount
}

// isSequel reports whether a press continues the current click
// sequence: close enough in time and in Manhattan distance.
func (t *clickTracker) isSequel(x, y int, now time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	elapsed := now.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxGap {
		return false
	}
	return abs(x-t.lastX)+abs(y-t.lastY) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
