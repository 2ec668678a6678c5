package input

import "time"

// Event is the interface implemented by all raw input events.
// The When timestamp is set by the backend at capture time.
type Event interface {
	When() time.Time
}

// EventTime provides the When method for event types that embed it.
type EventTime struct {
	t time.Time
}

// When returns the capture time of the event.
func (e EventTime) When() time.Time {
	return e.t
}

// SetTime sets the capture time of the event.
func (e *EventTime) SetTime(t time.Time) {
	e.t = t
}

// TouchID identifies a single finger across down/move/up events.
type TouchID int64

// PointerMove reports pointer motion, with or without a held button.
type PointerMove struct {
	EventTime

	// X, Y are the pointer position in device pixels.
	X, Y int

	// DX, DY are the motion since the previous move, in device pixels.
	DX, DY int

	// Buttons are the buttons held during the motion.
	Buttons ButtonMask
}

// PointerButton reports a button press or release.
type PointerButton struct {
	EventTime

	// X, Y are the pointer position in device pixels.
	X, Y int

	// Button is the button that changed state.
	Button Button

	// Pressed is true for a press, false for a release.
	Pressed bool

	// Clicks is the consecutive-click count for a press (1 = single,
	// 2 = double). Zero for releases.
	Clicks int
}

// Wheel reports scroll wheel motion.
type Wheel struct {
	EventTime

	// DX, DY are the scroll offsets in wheel units.
	DX, DY float64
}

// TouchDown reports a finger making contact.
type TouchDown struct {
	EventTime

	// ID identifies the finger.
	ID TouchID

	// X, Y are the contact position, normalized to [0,1].
	X, Y float64
}

// TouchMove reports a finger moving while in contact.
type TouchMove struct {
	EventTime

	// ID identifies the finger.
	ID TouchID

	// X, Y are the contact position, normalized to [0,1].
	X, Y float64

	// DX, DY are the motion since the previous event, normalized.
	DX, DY float64
}

// TouchUp reports a finger lifting.
type TouchUp struct {
	EventTime

	// ID identifies the finger.
	ID TouchID

	// X, Y are the last contact position, normalized to [0,1].
	X, Y float64
}

// KeyDown reports a key press, including OS auto-repeats.
type KeyDown struct {
	EventTime

	// Key is the key that was pressed.
	Key Key

	// Mods are the modifiers held during the press.
	Mods Modifier

	// Repeat is true for OS key-repeat events, false for the first press.
	Repeat bool
}

// GestureEvent reports a recognized platform gesture.
type GestureEvent struct {
	EventTime

	// Kind is the recognized gesture.
	Kind GestureKind
}

// Button identifies a single pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonPrimary is the primary (left) button.
	ButtonPrimary
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonSecondary is the secondary (right) button.
	ButtonSecondary
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// ButtonMask is a set of held pointer buttons.
type ButtonMask uint8

// Mask returns the mask bit for a button.
func (b Button) Mask() ButtonMask {
	if b == ButtonNone {
		return 0
	}
	return 1 << (b - 1)
}

// Has reports whether the mask contains the given button.
func (m ButtonMask) Has(b Button) bool {
	return m&b.Mask() != 0
}
