package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string // grapheme cluster; "" for the right half of a wide cluster
	style int    // index into Canvas.styles, -1 for unstyled
}

// Canvas is a fixed grid of terminal cells that text and glyphs can be
// placed on at arbitrary coordinates. Wide clusters take two cells.
// Drawing outside the grid is clipped.
type Canvas struct {
	width, height int
	cells         []cell
	styles        []lipgloss.Style
}

// NewCanvas returns a canvas of blank cells.
func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i] = cell{text: " ", style: -1}
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) addStyle(st lipgloss.Style) int {
	c.styles = append(c.styles, st)
	return len(c.styles) - 1
}

// set writes one cluster of the given width. A wide cluster that would
// straddle the right edge is replaced by a space.
func (c *Canvas) set(x, y int, text string, w, style int) {
	if !c.inside(x, y) {
		return
	}
	c.clearWide(x, y)
	if w == 2 {
		if x+1 >= c.width {
			text, w = " ", 1
		} else {
			c.clearWide(x+1, y)
		}
	}
	c.cells[y*c.width+x] = cell{text: text, style: style}
	if w == 2 {
		c.cells[y*c.width+x+1] = cell{text: "", style: style}
	}
}

// clearWide blanks the other half of a wide cluster overlapping (x, y).
func (c *Canvas) clearWide(x, y int) {
	i := y*c.width + x
	if c.cells[i].text == "" && x > 0 {
		c.cells[i-1] = cell{text: " ", style: c.cells[i-1].style}
	}
	if x+1 < c.width && c.cells[i+1].text == "" {
		c.cells[i+1] = cell{text: " ", style: c.cells[i].style}
	}
}

// Text draws s starting at (x, y) and returns the number of cells it spans.
// Parts falling outside the canvas are clipped.
func (c *Canvas) Text(x, y int, s string, st lipgloss.Style) int {
	style := c.addStyle(st)
	start := x
	state := -1
	rest := Sanitize(s)
	var cluster string
	var w int
	for rest != "" {
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		if w > 2 {
			w = 2
		}
		c.set(x, y, cluster, w, style)
		x += w
	}
	return x - start
}

// TextCentered draws s so that it is horizontally centered on cx.
func (c *Canvas) TextCentered(cx, y int, s string, st lipgloss.Style) {
	w := uniseg.StringWidth(Sanitize(s))
	c.Text(cx-w/2, y, s, st)
}

// Fill paints a rectangle with a single glyph.
func (c *Canvas) Fill(x, y, w, h int, glyph string, st lipgloss.Style) {
	style := c.addStyle(st)
	gw := max(1, uniseg.StringWidth(glyph))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col += gw {
			c.set(col, row, glyph, gw, style)
		}
	}
}

// HLine draws a horizontal run of glyph from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y int, glyph string, st lipgloss.Style) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	c.Fill(x0, y, x1-x0+1, 1, glyph, st)
}

// VLine draws a vertical run of glyph from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 int, glyph string, st lipgloss.Style) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	c.Fill(x, y0, 1, y1-y0+1, glyph, st)
}

// Line draws glyph along a straight segment using Bresenham's algorithm.
// Every step-th point is drawn, so step 2 gives a dotted line.
func (c *Canvas) Line(x0, y0, x1, y1, step int, glyph string, st lipgloss.Style) {
	style := c.addStyle(st)
	step = max(1, step)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	for n := 0; ; n++ {
		if n%step == 0 {
			c.set(x0, y0, glyph, 1, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// At returns the cluster drawn at (x, y), "" for the right half of a wide
// cluster and for points outside the canvas.
func (c *Canvas) At(x, y int) string {
	if !c.inside(x, y) {
		return ""
	}
	return c.cells[y*c.width+x].text
}

// Lines renders each row, grouping runs of equally styled cells.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var run strings.Builder
	for y := range c.height {
		var b strings.Builder
		current := -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current >= 0 {
				b.WriteString(c.styles[current].Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := range c.width {
			cl := c.cells[y*c.width+x]
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

// String renders the canvas as newline separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
