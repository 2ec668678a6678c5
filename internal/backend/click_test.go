package backend

import (
	"testing"
	"time"
)

func TestClickTrackerSingleClicks(t *testing.T) {
	tr := newClickTracker(400*time.Millisecond, 8)
	base := time.Unix(100, 0)

	if got := tr.record(10, 10, base); got != 1 {
		t.Errorf("first click = %d, want 1", got)
	}
	// Too slow for a sequel.
	if got := tr.record(10, 10, base.Add(time.Second)); got != 1 {
		t.Errorf("slow second click = %d, want 1", got)
	}
}

func TestClickTrackerDoubleClick(t *testing.T) {
	tr := newClickTracker(400*time.Millisecond, 8)
	base := time.Unix(100, 0)

	tr.record(10, 10, base)
	if got := tr.record(12, 11, base.Add(200*time.Millisecond)); got != 2 {
		t.Errorf("rapid second click = %d, want 2", got)
	}
	// A third rapid click starts over rather than counting to 3.
	if got := tr.record(12, 11, base.Add(300*time.Millisecond)); got != 1 {
		t.Errorf("third rapid click = %d, want 1", got)
	}
}

func TestClickTrackerDistanceBreaksSequence(t *testing.T) {
	tr := newClickTracker(400*time.Millisecond, 8)
	base := time.Unix(100, 0)

	tr.record(10, 10, base)
	if got := tr.record(30, 30, base.Add(100*time.Millisecond)); got != 1 {
		t.Errorf("far second click = %d, want 1", got)
	}
}

func TestClickTrackerReset(t *testing.T) {
	tr := newClickTracker(400*time.Millisecond, 8)
	base := time.Unix(100, 0)

	tr.record(10, 10, base)
	tr.reset()
	if got := tr.record(10, 10, base.Add(50*time.Millisecond)); got != 1 {
		t.Errorf("click after reset = %d, want 1", got)
	}
}
