// Package cursor provides a reusable cursor component for scrollable lists.
package cursor

import tea "github.com/charmbracelet/bubbletea"

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than stored,
// since they can change dynamically.
type Cursor struct {
	pos    int // current position (0-indexed)
	offset int // first visible item
	margin int // rows kept visible above/below the cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions, clamped to the list.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump sets the cursor to an absolute position, clamped to the list.
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	// a margin larger than half the viewport would make the cursor jitter
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds ensures the cursor is within valid bounds for the given length.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	old := *c
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return old != *c
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
	return old != *c
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	return start, min(start+height, listLen)
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleKey handles list navigation keys and returns true if the key was
// handled. Supported keys: j/down, k/up, home, end, ctrl+d, ctrl+u.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "home":
		c.Jump(0, listLen, height)
	case "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

// MouseResult describes what a mouse event did to the cursor.
type MouseResult int

const (
	MouseNone MouseResult = iota
	MouseScrolled
	MouseClicked
)

// HandleMouse applies a mouse event whose Y is relative to the first visible
// row. Wheel events move the cursor; a left press on a row jumps to it and
// returns its index.
func (c *Cursor) HandleMouse(msg tea.MouseMsg, listLen, height int) (MouseResult, int) {
	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonWheelUp:
		c.Move(-1, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonWheelDown:
		c.Move(1, listLen, height)
		return MouseScrolled, -1
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || msg.Y < 0 || msg.Y >= height {
			return MouseNone, -1
		}
		row := c.offset + msg.Y
		if row >= listLen {
			return MouseNone, -1
		}
		c.Jump(row, listLen, height)
		return MouseClicked, row
	}
	return MouseNone, -1
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	return max(v, 0)
}
