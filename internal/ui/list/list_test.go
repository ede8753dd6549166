package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestList(n int) Model[string] {
	m := New[string](0)
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	m.SetItems(items)
	m.SetSize(10, 3)
	m.SetFocused(true)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestList(5)

	if r := m.Update(key("j")); r.Action != ActionMoved || r.Index != 1 {
		t.Errorf("j = %+v, want moved/1", r)
	}
	m.Update(key("down"))
	if r := m.Update(key("enter")); r.Action != ActionEnter || r.Index != 2 {
		t.Errorf("enter = %+v, want enter/2", r)
	}
	if got, _ := m.Selected(); got != "c" {
		t.Errorf("Selected() = %q, want c", got)
	}
}

func TestUpdate_UnfocusedIgnoresKeys(t *testing.T) {
	m := newTestList(5)
	m.SetFocused(false)
	if r := m.Update(key("j")); r.Action != ActionNone || r.Index != -1 {
		t.Errorf("unfocused j = %+v, want none", r)
	}
}

func TestUpdate_ClickScrolledRow(t *testing.T) {
	m := newTestList(6)
	m.Select(5) // offset 3

	r := m.Update(tea.MouseMsg{Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if r.Action != ActionClick || r.Index != 3 {
		t.Errorf("click = %+v, want click/3", r)
	}
	if m.SelectedIndex() != 3 {
		t.Errorf("SelectedIndex() = %d, want 3", m.SelectedIndex())
	}
}

func TestUpdate_EmptyList(t *testing.T) {
	m := newTestList(0)
	if r := m.Update(key("enter")); r.Action != ActionNone {
		t.Errorf("enter on empty = %+v, want none", r)
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected() ok on empty list")
	}
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newTestList(6)
	m.Select(5)
	m.SetItems([]string{"x", "y"})
	if m.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", m.SelectedIndex())
	}
	if start, end := m.VisibleRange(); start != 0 || end != 2 {
		t.Errorf("VisibleRange() = [%d,%d), want [0,2)", start, end)
	}
}

func TestView(t *testing.T) {
	m := newTestList(2)
	m.Select(1)
	got := m.View(func(item string, selected bool, width int) string {
		prefix := "  "
		if selected {
			prefix = "> "
		}
		return prefix + item
	})
	want := strings.Join([]string{"  a", "> b", strings.Repeat(" ", 10)}, "\n")
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}
