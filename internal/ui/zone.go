package ui

// Rect is an axis-aligned rectangle in logical coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Zone is a clickable region registered by a panel during its draw
// pass. Fire runs when a press that landed in the zone is released
// inside it.
type Zone struct {
	Rect Rect
	Fire func()
}

// ZoneSet tracks a panel's registered zones and the press/release cycle
// across them. Zones are cleared before every draw pass and
// re-registered while drawing, so the set always matches what is on
// screen.
type ZoneSet struct {
	zones []Zone
	armed *Zone
}

// Add registers a zone. Later zones win when regions overlap, matching
// draw order (the last thing drawn is on top).
func (zs *ZoneSet) Add(r Rect, fire func()) {
	zs.zones = append(zs.zones, Zone{Rect: r, Fire: fire})
}

// Clear removes all zones. An armed zone stays armed so a press that
// straddles a redraw still resolves on release.
func (zs *ZoneSet) Clear() {
	zs.zones = zs.zones[:0]
}

// Len returns the number of registered zones.
func (zs *ZoneSet) Len() int {
	return len(zs.zones)
}

// Down arms the topmost zone containing the point. Reports whether a
// zone claimed the press.
func (zs *ZoneSet) Down(x, y float64) bool {
	for i := len(zs.zones) - 1; i >= 0; i-- {
		if zs.zones[i].Rect.Contains(x, y) {
			z := zs.zones[i]
			zs.armed = &z
			return true
		}
	}
	return false
}

// Up resolves an armed press. The zone fires only if the release is
// still inside it; either way the press is consumed.
func (zs *ZoneSet) Up(x, y float64) bool {
	if zs.armed == nil {
		return false
	}
	z := zs.armed
	zs.armed = nil
	if z.Rect.Contains(x, y) && z.Fire != nil {
		z.Fire()
	}
	return true
}
