package carousel

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

const (
	arrowPrev = "◀"
	arrowNext = "▶"
	dotActive = "●"
	dotIdle   = "○"
)

// geometry locates the carousel's parts in local coordinates. With fewer
// than three rows only the strip is drawn.
type geometry struct {
	chrome      bool
	headerRow   int
	prevX       int
	nextX       int
	stripTop    int
	stripHeight int
	dotsRow     int
	dotsStart   int // column of the first drawn dot
	dotsFirst   int // page of the first drawn dot
	dotsCount   int // dots drawn
	width       int
}

func (m Model[T]) geometry() geometry {
	w, h := m.Size()
	if h < 3 {
		return geometry{stripHeight: h, width: w, headerRow: -1, dotsRow: -1}
	}
	g := geometry{
		chrome:      true,
		headerRow:   0,
		prevX:       w - 4,
		nextX:       w - 2,
		stripTop:    1,
		stripHeight: h - 2,
		dotsRow:     h - 1,
		width:       w,
	}
	g.dotsFirst, g.dotsCount = dotWindow(m.PageCount(), m.CurrentPage(), (w+1)/2)
	g.dotsStart = max(0, (w-(2*g.dotsCount-1))/2)
	return g
}

// dotWindow picks the pages that get a dot when more than fit pages exist,
// keeping the active page near the middle.
func dotWindow(pages, active, fit int) (first, count int) {
	if pages <= fit {
		return 0, pages
	}
	first = clampInt(active-fit/2, 0, pages-fit)
	return first, fit
}

// dotAt maps a column on the dots row to a page. Each dot owns its cell and
// the gap after it.
func (g geometry) dotAt(x int) (int, bool) {
	if x < g.dotsStart {
		return 0, false
	}
	i := (x - g.dotsStart) / 2
	if i >= g.dotsCount {
		return 0, false
	}
	return g.dotsFirst + i, true
}

// View renders the carousel. render draws one item into a card of the given
// width; it may return several lines, which are cut or padded to the strip.
func (m Model[T]) View(renderItem func(item T, width int) string) string {
	g := m.geometry()
	if g.width <= 0 || (g.stripHeight <= 0 && !g.chrome) {
		return ""
	}

	lines := make([]string, 0, m.Height())
	if g.chrome {
		lines = append(lines, m.headerLine(g))
	}
	lines = append(lines, m.strip(g, renderItem)...)
	if g.chrome {
		lines = append(lines, m.dotsLine(g))
	}
	return strings.Join(lines, "\n")
}

func (m Model[T]) headerLine(g geometry) string {
	s := styles.T().S()

	counter := m.opts.Counter
	if counter == nil {
		counter = func(n int) string { return fmt.Sprintf("%d items", n) }
	}
	left := s.Accent.Render(m.opts.Title)
	if m.opts.Title != "" {
		left += " "
	}
	left += s.Muted.Render(counter(len(m.items)))

	arrow := func(glyph string, enabled bool) string {
		if enabled && !m.dragging {
			return s.Title.Render(glyph)
		}
		return s.Subtle.Render(glyph)
	}
	right := arrow(arrowPrev, m.CanGoPrevious()) + " " + arrow(arrowNext, m.CanGoNext()) + " "

	leftWidth := max(0, g.prevX-1)
	left = ansi.Truncate(left, leftWidth, "…")
	return render.Row(left, right, g.width)
}

func (m Model[T]) dotsLine(g geometry) string {
	s := styles.T().S()
	if g.dotsCount == 0 {
		return render.EmptyLine(g.width)
	}

	active := m.CurrentPage()
	dots := make([]string, g.dotsCount)
	for i := range dots {
		if g.dotsFirst+i == active {
			dots[i] = s.Accent.Render(dotActive)
		} else {
			dots[i] = s.Subtle.Render(dotIdle)
		}
	}
	line := strings.Repeat(" ", g.dotsStart) + strings.Join(dots, " ")
	return padANSI(ansi.Truncate(line, g.width, ""), g.width)
}

// strip draws the cards around the live offset. Cards before the first and
// after the last item are blank so overscroll shows empty space.
func (m Model[T]) strip(g geometry, renderItem func(T, int) string) []string {
	lines := make([]string, g.stripHeight)
	iw := m.ItemWidth()

	if len(m.items) == 0 || iw <= 0 {
		msg := m.opts.EmptyText
		for i := range lines {
			lines[i] = render.EmptyLine(g.width)
		}
		if msg != "" && len(lines) > 0 {
			lines[len(lines)/2] = styles.T().S().Muted.Render(render.Center(msg, g.width))
		}
		return lines
	}

	pos := int(roundHalfUp(m.offset))
	first := floorDiv(pos, iw)
	shift := pos - first*iw

	count := m.pageSize + 2
	cards := make([][]string, count)
	for i := range cards {
		idx := first + i
		if idx >= 0 && idx < len(m.items) {
			cards[i] = card(renderItem(m.items[idx], iw), iw, g.stripHeight)
		} else {
			cards[i] = card("", iw, g.stripHeight)
		}
	}

	for y := range lines {
		var b strings.Builder
		for _, c := range cards {
			b.WriteString(c[y])
		}
		lines[y] = padANSI(ansi.Cut(b.String(), shift, shift+g.width), g.width)
	}
	return lines
}

// card fits rendered content into exactly height lines of width cells.
func card(content string, width, height int) []string {
	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = ansi.Truncate(src[i], width, "")
		}
		out[i] = padANSI(line, width)
	}
	return out
}

func padANSI(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
