// Package gesture tells taps from drags in a stream of terminal mouse events.
package gesture

import "math"

// DefaultSlop is how far, in cells, a pointer may travel and still count
// as a tap.
const DefaultSlop = 1.0

// Axis selects which movement counts towards the slop.
type Axis int

const (
	AxisBoth Axis = iota
	AxisHorizontal
	AxisVertical
)

// Tracker follows one pointer from press to release.
type Tracker struct {
	Slop float64
	Axis Axis

	active   bool
	dragging bool // movement exceeded slop at some point
	startX   int
	startY   int
	lastX    int
	lastY    int
}

// New returns a tracker with the given slop; non-positive values use DefaultSlop.
func New(slop float64, axis Axis) Tracker {
	if slop <= 0 {
		slop = DefaultSlop
	}
	return Tracker{Slop: slop, Axis: axis}
}

// Begin starts tracking a pointer pressed at (x, y). A press while already
// tracking restarts the gesture.
func (t *Tracker) Begin(x, y int) {
	t.active = true
	t.dragging = false
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
}

// Move records pointer motion and returns the delta since the previous
// event. It returns zeros when no gesture is active.
func (t *Tracker) Move(x, y int) (dx, dy int) {
	if !t.active {
		return 0, 0
	}
	dx, dy = x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	if t.distance(x, y) > t.Slop {
		t.dragging = true
	}
	return dx, dy
}

// End finishes the gesture at (x, y) and reports whether it was a tap.
// Once a drag exceeded the slop it stays a drag even if the pointer came back.
func (t *Tracker) End(x, y int) (tap bool) {
	if !t.active {
		return false
	}
	t.Move(x, y)
	t.active = false
	return !t.dragging
}

// Cancel abandons the gesture without reporting a tap.
func (t *Tracker) Cancel() {
	t.active = false
	t.dragging = false
}

// Active reports whether a pointer is currently held.
func (t *Tracker) Active() bool {
	return t.active
}

// Dragging reports whether the current or most recent gesture moved
// beyond the slop.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Start returns where the pointer was pressed.
func (t *Tracker) Start() (x, y int) {
	return t.startX, t.startY
}

// Total returns the movement from press to the last known position.
func (t *Tracker) Total() (dx, dy int) {
	return t.lastX - t.startX, t.lastY - t.startY
}

func (t *Tracker) distance(x, y int) float64 {
	dx := float64(x - t.startX)
	dy := float64(y - t.startY)
	switch t.Axis {
	case AxisHorizontal:
		return math.Abs(dx)
	case AxisVertical:
		return math.Abs(dy)
	}
	return math.Hypot(dx, dy)
}
