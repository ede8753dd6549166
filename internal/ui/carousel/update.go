package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/keymap"
)

// frameInterval is the settle animation frame time (about 60fps).
const frameInterval = 16 * time.Millisecond

// Action represents what happened during Update.
type Action int

const (
	ActionNone     Action = iota
	ActionMoved           // the window moved to another index
	ActionActivate        // an item was tapped or chosen with the keyboard
)

// Result is returned from Update to tell the parent what happened.
type Result[T any] struct {
	Action Action
	Item   T
	Index  int // index of Item in the full list, -1 if none
}

// FrameMsg drives the settle animation of the carousel with the same ID.
type FrameMsg struct {
	ID int64
}

// ID identifies the carousel's animation frames.
func (m Model[T]) ID() int64 {
	return m.id
}

func none[T any]() Result[T] {
	return Result[T]{Index: -1}
}

// Update handles mouse, key and frame messages. Mouse coordinates must be
// relative to the carousel's top-left corner. Keys are only handled while
// focused.
func (m *Model[T]) Update(msg tea.Msg) (Result[T], tea.Cmd) {
	var res Result[T]
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id {
			return none[T](), nil
		}
		m.ticking = false
		m.Step(frameInterval)
		res = none[T]()
	case tea.MouseMsg:
		res = m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return none[T](), nil
		}
		res = m.handleKey(msg.String())
	default:
		return none[T](), nil
	}
	return res, m.animate()
}

// animate schedules the next frame while a settle is running.
func (m *Model[T]) animate() tea.Cmd {
	if !m.settle.active || m.ticking {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

func (m *Model[T]) moved(changed bool) Result[T] {
	if !changed {
		return none[T]()
	}
	return Result[T]{Action: ActionMoved, Index: m.current}
}

func (m *Model[T]) activate(slot int) Result[T] {
	item, ok := m.Activate(slot)
	if !ok {
		return none[T]()
	}
	return Result[T]{Action: ActionActivate, Item: item, Index: m.current + slot}
}

func (m *Model[T]) activateIndex(index int) Result[T] {
	if m.tracker.Dragging() || index < 0 || index >= len(m.items) {
		return none[T]()
	}
	return Result[T]{Action: ActionActivate, Item: m.items[index], Index: index}
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) Result[T] {
	if m.dragging {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.ContinueDrag(msg.X)
			return none[T]()
		case tea.MouseActionRelease:
			m.ContinueDrag(msg.X)
			index := m.indexAt(msg.X)
			before := m.current
			m.EndDrag()
			// The tapped card is resolved at the offset it was seen at,
			// which may still be mid-settle.
			if res := m.activateIndex(index); res.Action == ActionActivate {
				return res
			}
			return m.moved(m.current != before)
		case tea.MouseActionPress:
			// A second press without a release: treat it as the end of the
			// first gesture and start over.
			m.EndDrag()
		}
	}

	if msg.Action != tea.MouseActionPress {
		return none[T]()
	}

	switch msg.Button { //nolint:exhaustive // Only handling specific buttons
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.moved(m.GoToPrevious())
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.moved(m.GoToNext())
	case tea.MouseButtonLeft:
	default:
		return none[T]()
	}

	g := m.geometry()
	switch {
	case g.chrome && msg.Y == g.headerRow:
		switch msg.X {
		case g.prevX:
			return m.moved(m.GoToPrevious())
		case g.nextX:
			return m.moved(m.GoToNext())
		}
	case g.chrome && msg.Y == g.dotsRow:
		if page, ok := g.dotAt(msg.X); ok {
			return m.moved(m.JumpToPage(page))
		}
	case msg.Y >= g.stripTop && msg.Y < g.stripTop+g.stripHeight:
		m.BeginDrag(msg.X)
	}
	return none[T]()
}

func (m *Model[T]) handleKey(key string) Result[T] {
	// Keyboard choices are never the tail of a drag.
	if !m.dragging {
		m.tracker.Cancel()
	}

	switch m.keys.Resolve(key) { //nolint:exhaustive // Only carousel actions
	case keymap.ActionPrevItem:
		return m.moved(m.GoToPrevious())
	case keymap.ActionNextItem:
		return m.moved(m.GoToNext())
	case keymap.ActionFirstPage:
		return m.moved(m.JumpToPage(0))
	case keymap.ActionLastPage:
		return m.moved(m.JumpToPage(m.PageCount() - 1))
	case keymap.ActionSelect:
		return m.activate(0)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return m.activate(int(key[0] - '1'))
	}
	return none[T]()
}

// indexAt returns the item index under strip column x at the live offset.
func (m Model[T]) indexAt(x int) int {
	w := m.ItemWidth()
	if w <= 0 {
		return -1
	}
	return floorDiv(int(roundHalfUp(m.offset))+x, w)
}
