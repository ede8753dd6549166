// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/popup"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	buttonRow = 4
	buttonGap = 2
)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	yes     string
	no      string
	context any
	active  bool
	focusNo bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. yes labels the confirming button;
// context is passed back untouched in the Result.
func (m *Model) Show(title, message, yes string, context any) {
	m.title = title
	m.message = message
	m.yes = yes
	m.no = "Cancel"
	m.context = context
	m.active = true
	m.focusNo = false
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || msg.Y != buttonRow {
			return m, nil
		}
		yesEnd := ansi.StringWidth(m.button(m.yes, false))
		noStart := yesEnd + buttonGap
		noEnd := noStart + ansi.StringWidth(m.button(m.no, false))
		switch {
		case msg.X >= 0 && msg.X < yesEnd:
			return m, m.finish(true)
		case msg.X >= noStart && msg.X < noEnd:
			return m, m.finish(false)
		}
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		return m.finish(true)
	case "n", "N", "esc":
		return m.finish(false)
	case "enter":
		return m.finish(!m.focusNo)
	case "left", "right", "h", "l", "tab":
		m.focusNo = !m.focusNo
	}
	return nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

func (m Model) button(label string, focused bool) string {
	text := "[ " + label + " ]"
	if focused {
		return styles.T().S().Active.Render(text)
	}
	return styles.T().S().Muted.Render(text)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	buttons := m.button(m.yes, !m.focusNo) + strings.Repeat(" ", buttonGap) + m.button(m.no, m.focusNo)
	lines := []string{
		s.Title.Render(m.title),
		"",
		s.Base.Render(m.message),
		"",
		buttons,
		"",
		s.Subtle.Render("y/enter confirm · n/esc cancel"),
	}
	return strings.Join(lines, "\n")
}
