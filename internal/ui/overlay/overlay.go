// Package overlay composes layered terminal views.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws fg over base with its top-left corner at column x, row y.
// Rows of fg falling outside base are dropped and every touched base line is
// padded to width. Styled text is cut on display columns.
func Place(base, fg string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		fgWidth := ansi.StringWidth(fgLine)
		if x+fgWidth > width {
			fgLine = ansi.Truncate(fgLine, max(width-x, 0), "")
			fgWidth = ansi.StringWidth(fgLine)
		}

		line := baseLines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(line, 0, x)
		if w := ansi.StringWidth(prefix); w < x {
			prefix += strings.Repeat(" ", x-w)
		}

		end := x + fgWidth
		suffix := ""
		if end < width {
			suffix = ansi.Cut(line, end, width)
			if ansi.StringWidth(suffix) > width-end {
				// a wide rune straddles the right edge of fg
				suffix = ansi.Cut(line, end+1, width)
			}
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			}
		}

		baseLines[row] = prefix + fgLine + suffix
	}

	return strings.Join(baseLines, "\n")
}

// Dim strips styling from view and renders it faint, for content behind a
// modal.
func Dim(view string, color lipgloss.Color) string {
	st := lipgloss.NewStyle().Foreground(color)
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
