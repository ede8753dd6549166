package cursor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down without scroll", 1, 0, 1, 10, 5, 1, 0},
		{"down scrolls with margin", 1, 0, 4, 10, 5, 4, 1},
		{"up clamps to 0", 1, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 1, 0, 50, 10, 5, 9, 5},
		{"short list never scrolls", 2, 0, 2, 3, 5, 2, 0},
		{"oversized margin is capped", 10, 0, 3, 10, 5, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.Jump(tt.initial, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(1)
	c.Move(3, 0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty list moved cursor to %d/%d", c.Pos(), c.Offset())
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(7, 8, 3)
	if !c.ClampToBounds(4, 3) {
		t.Error("ClampToBounds() = false, want true after shrink")
	}
	if c.Pos() != 3 || c.Offset() != 1 {
		t.Errorf("after shrink pos/offset = %d/%d, want 3/1", c.Pos(), c.Offset())
	}
	if c.ClampToBounds(4, 3) {
		t.Error("ClampToBounds() = true, want false when already valid")
	}
	if !c.ClampToBounds(0, 3) || c.Pos() != 0 || c.Offset() != 0 {
		t.Error("empty list should reset the cursor")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                string
		offset, len, height int
		wantStart, wantEnd  int
	}{
		{"full window", 2, 10, 4, 2, 6},
		{"tail", 8, 10, 4, 8, 10},
		{"empty", 0, 0, 4, 0, 0},
		{"no height", 0, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cursor{offset: tt.offset}
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		wantPos int
		handled bool
	}{
		{"j", 0, 1, true},
		{"down", 0, 1, true},
		{"k", 3, 2, true},
		{"up", 0, 0, true},
		{"home", 5, 0, true},
		{"end", 0, 9, true},
		{"ctrl+d", 0, 2, true},
		{"ctrl+u", 5, 3, true},
		{"x", 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, 10, 4)
			if got := c.HandleKey(tt.key, 10, 4); got != tt.handled {
				t.Errorf("HandleKey(%q) = %v, want %v", tt.key, got, tt.handled)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestHandleMouse(t *testing.T) {
	press := func(y int) tea.MouseMsg {
		return tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}

	c := New(0)
	c.Jump(6, 10, 4) // offset 3

	result, row := c.HandleMouse(press(1), 10, 4)
	if result != MouseClicked || row != 4 || c.Pos() != 4 {
		t.Errorf("click row 1 = %v/%d pos %d, want clicked/4 pos 4", result, row, c.Pos())
	}

	if result, _ := c.HandleMouse(press(4), 10, 4); result != MouseNone {
		t.Errorf("click below viewport = %v, want none", result)
	}

	result, _ = c.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, 10, 4)
	if result != MouseScrolled || c.Pos() != 5 {
		t.Errorf("wheel down = %v pos %d, want scrolled pos 5", result, c.Pos())
	}

	release := tea.MouseMsg{Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	if result, _ := c.HandleMouse(release, 10, 4); result != MouseNone {
		t.Errorf("release = %v, want none", result)
	}
}

func TestHandleMouse_PastEndOfShortList(t *testing.T) {
	c := New(0)
	msg := tea.MouseMsg{Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	if result, row := c.HandleMouse(msg, 2, 5); result != MouseNone || row != -1 {
		t.Errorf("click past items = %v/%d, want none/-1", result, row)
	}
}
