// Package textinput provides a single-line text input popup.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/popup"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// CharLimit bounds the length of the entered text in runes.
const CharLimit = 80

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	hint    string
	input   textinput.Model
	context any
}

// New creates a new text input model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = CharLimit
	return Model{input: ti}
}

// Start shows the input with a title and initial text. context is returned
// untouched in the Result.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetPlaceholder sets the text shown while the input is empty.
func (m *Model) SetPlaceholder(s string) {
	m.input.Placeholder = s
}

// SetHint replaces the line under the input.
func (m *Model) SetHint(s string) {
	m.hint = s
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.hint = ""
	m.context = nil
	m.input.Reset()
	m.input.Blur()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	// prompt plus one cell for the cursor
	m.input.Width = max(width-3, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true, Context: ctx})
		}
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		ctx := m.context
		return m, func() tea.Msg {
			return ActionMsg(Result{Text: text, Context: ctx})
		}
	case "tab", "shift+tab":
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	hint := m.hint
	if hint == "" {
		hint = "enter 확인 · esc 취소"
	}

	lines := []string{
		s.Accent.Render(render.Truncate(m.title, m.Width())),
		"",
		m.input.View(),
		"",
		s.Subtle.Render(render.Truncate(hint, m.Width())),
	}
	return strings.Join(lines, "\n")
}
