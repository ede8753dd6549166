// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/popup"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"player",
	"map",
	"carousel",
	"dial",
	"modal",
	"drop",
	"drop-tags",
	"drop-results",
}

var categoryLabels = map[string]string{
	"global":       "Global",
	"player":       "Player",
	"map":          "Map",
	"carousel":     "Nearby Songs",
	"dial":         "Dial",
	"modal":        "Location",
	"drop":         "Drop Page",
	"drop-tags":    "Drop Page · Tags",
	"drop-results": "Drop Page · Results",
}

// chrome is the title, footer and their spacing lines.
const chrome = 4

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	m.lines = buildLines(bindings)
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "?", "esc", "q":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.scroll(1)
		case tea.MouseButtonWheelUp:
			m.scroll(-1)
		}
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	m.scrollOffset = max(0, min(m.scrollOffset+delta, m.maxScroll()))
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := m.lines[m.scrollOffset:end]

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(s.Subtle.Render(footer))
	return sb.String()
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, ansi.StringWidth(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				s.Accent.Render(label),
				s.Subtle.Render(strings.Repeat("─", keyWidth+16)),
			)
			current = b.Context
		}
		key := keyLabel(b)
		key += strings.Repeat(" ", keyWidth-ansi.StringWidth(key))
		lines = append(lines, s.Title.Render(key)+"  "+s.Base.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
