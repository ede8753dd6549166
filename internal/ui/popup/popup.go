// Package popup frames modal content and places it on screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songdrop/internal/ui/overlay"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Border plus horizontal padding on each side.
const (
	chromeX = 2
	chromeY = 1
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.BorderFocus,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Box is a framed popup and its position on screen.
type Box struct {
	View          string
	X, Y          int
	Width, Height int
}

// Over draws the box on top of base.
func (b Box) Over(base string, screenWidth int) string {
	return overlay.Place(base, b.View, b.X, b.Y, screenWidth)
}

// Contains reports whether the screen cell lies inside the box, border included.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Local converts screen coordinates to coordinates relative to the first
// content cell.
func (b Box) Local(x, y int) (lx, ly int) {
	return x - b.X - chromeX, y - b.Y - chromeY
}

// InnerSize returns the content area left inside a box of the given outer size.
func InnerSize(outerWidth, outerHeight int) (width, height int) {
	return max(outerWidth-2*chromeX, 0), max(outerHeight-2*chromeY, 0)
}

// Frame borders content padded to innerWidth and centers it on screen.
func Frame(content string, innerWidth int, st Style, screenWidth, screenHeight int) Box {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = fit(line, innerWidth)
	}

	view := lipgloss.NewStyle().
		Border(st.Border).
		BorderForeground(st.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	w := lipgloss.Width(view)
	h := lipgloss.Height(view)
	return Box{
		View:   view,
		X:      max((screenWidth-w)/2, 0),
		Y:      max((screenHeight-h)/2, 0),
		Width:  w,
		Height: h,
	}
}

// Dialog is a popup with a title, a body and an optional footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width, 0 fits the content
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Render frames the dialog and centers it on a screen of the given size.
func (d *Dialog) Render(screenWidth, screenHeight int) Box {
	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	}
	width = min(width, max(screenWidth-2*chromeX, 1))

	var lines []string
	if d.Title != "" {
		lines = append(lines, center(d.Style.TitleStyle.Render(d.Title), width), "")
	}
	lines = append(lines, strings.Split(d.Content, "\n")...)
	if d.Footer != "" {
		lines = append(lines, "", center(d.Style.FooterStyle.Render(d.Footer), width))
	}

	return Frame(strings.Join(lines, "\n"), width, d.Style, screenWidth, screenHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "…")
		w = ansi.StringWidth(s)
	}
	return s + strings.Repeat(" ", max(width-w, 0))
}

func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
