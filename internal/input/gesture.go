package input

import "strings"

// GestureKind identifies a platform gesture recognized by the backend.
type GestureKind uint8

const (
	// GestureNone indicates no gesture.
	GestureNone GestureKind = iota
	// GestureSwipeLeft is a quick leftward swipe.
	GestureSwipeLeft
	// GestureSwipeRight is a quick rightward swipe.
	GestureSwipeRight
	// GestureSwipeUp is a quick upward swipe.
	GestureSwipeUp
	// GestureSwipeDown is a quick downward swipe.
	GestureSwipeDown
	// GesturePinchIn is a two-finger pinch toward the center.
	GesturePinchIn
	// GesturePinchOut is a two-finger spread away from the center.
	GesturePinchOut
)

var gestureNames = map[GestureKind]string{
	GestureSwipeLeft:  "swipe-left",
	GestureSwipeRight: "swipe-right",
	GestureSwipeUp:    "swipe-up",
	GestureSwipeDown:  "swipe-down",
	GesturePinchIn:    "pinch-in",
	GesturePinchOut:   "pinch-out",
}

// String returns the canonical name of the gesture.
func (g GestureKind) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return "none"
}

// ParseGesture parses a gesture name as used in keymap files. Returns
// GestureNone if the name is not recognized.
func ParseGesture(name string) GestureKind {
	name = strings.ToLower(strings.TrimSpace(name))
	for g, n := range gestureNames {
		if n == name {
			return g
		}
	}
	return GestureNone
}
