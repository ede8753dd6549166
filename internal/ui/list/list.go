// Package list provides a generic scrollable list component.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/cursor"
	"github.com/llehouerou/songdrop/internal/ui/render"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone  Action = iota
	ActionMoved        // cursor moved by key or wheel
	ActionEnter        // enter pressed on an item
	ActionClick        // left press on a row (cursor moved there)
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // item the action applies to (-1 if none)
}

// Model is a generic scrollable list. Its height is the number of rows it
// may use; mouse coordinates passed to Update are relative to its first row.
type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{
		cursor: cursor.New(margin),
	}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items), m.Height())
}

// SetSize sets the list area and keeps the cursor visible in it.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.ClampToBounds(len(m.items), m.Height())
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index.
func (m *Model[T]) Select(index int) {
	m.cursor.Jump(index, len(m.items), m.Height())
}

// Reset moves the cursor back to the first item.
func (m *Model[T]) Reset() {
	m.cursor.Reset()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.Height())
}

// Update handles key and mouse input. Keys are ignored unless focused;
// mouse events are always handled since the parent routes them by position.
func (m *Model[T]) Update(msg tea.Msg) Result {
	height := m.Height()

	switch msg := msg.(type) {
	case tea.MouseMsg:
		result, row := m.cursor.HandleMouse(msg, len(m.items), height)
		switch result { //nolint:exhaustive // MouseNone falls through
		case cursor.MouseScrolled:
			return Result{Action: ActionMoved, Index: m.cursor.Pos()}
		case cursor.MouseClicked:
			return Result{Action: ActionClick, Index: row}
		}

	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}
		key := msg.String()
		if m.cursor.HandleKey(key, len(m.items), height) {
			return Result{Action: ActionMoved, Index: m.cursor.Pos()}
		}
		if key == "enter" && len(m.items) > 0 {
			return Result{Action: ActionEnter, Index: m.cursor.Pos()}
		}
	}

	return Result{Index: -1}
}

// View renders the visible rows with renderRow and pads the result to the
// list's height.
func (m Model[T]) View(renderRow func(item T, selected bool, width int) string) string {
	start, end := m.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(m.items[i], i == m.cursor.Pos(), m.Width()))
	}
	return strings.Join(render.Lines(lines, m.Width(), m.Height()), "\n")
}
