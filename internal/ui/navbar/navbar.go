// Package navbar renders the bottom page tabs.
package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Height is the tab bar height: a rule and the tabs row.
const Height = 2

// Page identifies a top-level page.
type Page int

const (
	PageMap Page = iota
	PageDrop
	PageProfile
)

// tab represents a navigation tab.
type tab struct {
	key  string
	name string
	page Page
}

var tabs = []tab{
	{"F1", "지도", PageMap},
	{"F2", "드랍", PageDrop},
	{"F3", "마이", PageProfile},
}

const separator = " │ "

// String returns the tab name of the page.
func (p Page) String() string {
	for _, t := range tabs {
		if t.page == p {
			return t.name
		}
	}
	return "?"
}

func label(t tab) string {
	return t.key + " " + t.name
}

// leftPad returns the indent that centers the tabs.
func leftPad(width int) int {
	total := 0
	for i, t := range tabs {
		if i > 0 {
			total += lipgloss.Width(separator)
		}
		total += lipgloss.Width(label(t))
	}
	return max((width-total)/2, 0)
}

// Render returns the tab bar for the given width.
func Render(current Page, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.page == current {
			parts = append(parts, s.Accent.Render(t.key)+" "+s.Active.Render(t.name))
		} else {
			parts = append(parts, s.Subtle.Render(t.key)+" "+s.Muted.Render(t.name))
		}
	}
	content := strings.Repeat(" ", leftPad(width)) + strings.Join(parts, s.Subtle.Render(separator))

	return s.Subtle.Render(render.Separator(width)) + "\n" + content
}

// PageAt returns the tab under column x of the tabs row.
func PageAt(width, x int) (Page, bool) {
	col := leftPad(width)
	for _, t := range tabs {
		w := lipgloss.Width(label(t))
		if x >= col && x < col+w {
			return t.page, true
		}
		col += w + lipgloss.Width(separator)
	}
	return PageMap, false
}
