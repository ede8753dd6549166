package mapview

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Map features, as fractions of the viewport.
var (
	mainStreetsH  = []float64{0.25, 2.0 / 3}
	mainStreetsV  = []float64{1.0 / 3, 0.75}
	minorStreetsH = []float64{0.5}
	minorStreetsV = []float64{2.0 / 3}

	blocks = []struct{ x, y, w, h float64 }{
		{0.05, 0.10, 0.15, 0.12},
		{0.68, 0.12, 0.20, 0.10},
		{0.10, 0.72, 0.17, 0.12},
		{0.80, 0.76, 0.13, 0.10},
		{0.42, 0.30, 0.18, 0.14},
	}

	streetNames = []struct {
		name     string
		x, y     float64
		vertical bool
	}{
		{"강남대로", 0.04, 0.25, false},
		{"테헤란로", 0.80, 2.0 / 3, false},
		{"선릉로", 0.06, 0.5, false},
		{"역삼로", 1.0 / 3, 0.36, true},
	}

	landmarks = []struct {
		name string
		x, y float64
	}{
		{"강남역", 0.58, 0.31},
		{"선릉역", 0.25, 0.73},
	}

	// fixed demo positions by location ID
	markerPositions = map[string]struct{ x, y float64 }{
		"1": {0.25, 0.35},
		"2": {0.65, 0.55},
		"3": {0.75, 0.25},
	}

	herePosition = struct{ x, y float64 }{0.70, 0.45}
)

const (
	gridStepX = 8
	gridStepY = 4
)

// cell maps a viewport fraction to a panned cell.
func (m Model) cell(fx, fy float64) (x, y int) {
	px, py := m.Pan()
	return int(math.Round(fx*float64(m.Width()-1))) + px,
		int(math.Round(fy*float64(m.Height()-1))) + py
}

func markerLabel(loc catalog.Location) (label, badge string) {
	if len(loc.Songs) == 1 {
		initial, _, _, _ := uniseg.FirstGraphemeClusterInString(loc.Songs[0].Title, -1)
		return "(" + icons.Music() + " " + initial + ")", ""
	}
	return "(" + icons.Music() + " ", catalog.MarkerBadge(len(loc.Songs)) + ")"
}

// markerRect returns the row and the column span of a location's marker.
func (m Model) markerRect(loc catalog.Location) (x0, x1, y int) {
	pos, ok := markerPositions[loc.ID]
	if !ok {
		pos = struct{ x, y float64 }{0.5, 0.5}
	}
	label, badge := markerLabel(loc)
	w := uniseg.StringWidth(label + badge)
	cx, cy := m.cell(pos.x, pos.y)
	x0 = cx - w/2
	return x0, x0 + w, cy
}

// MarkerAt returns the location whose marker covers the cell, allowing one
// column of slack on each side.
func (m Model) MarkerAt(x, y int) (int, bool) {
	for i, loc := range m.locations {
		x0, x1, my := m.markerRect(loc)
		if y == my && x >= x0-1 && x <= x1 {
			return i, true
		}
	}
	return -1, false
}

func compassLabel() string {
	return "[" + icons.Compass() + "]"
}

func (m Model) onCompass(x, y int) bool {
	w := uniseg.StringWidth(compassLabel())
	return y == 0 && x >= m.Width()-w-1 && x < m.Width()-1
}

// View draws the map.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	s := styles.T().S()
	c := render.NewCanvas(w, h)

	m.drawGrid(c, s.Subtle)
	m.drawStreets(c, s.Minor, s.Street)
	for _, b := range blocks {
		x, y := m.cell(b.x, b.y)
		c.Fill(x, y, max(1, int(b.w*float64(w))), max(1, int(b.h*float64(h))), "░", s.Block)
	}
	for _, n := range streetNames {
		x, y := m.cell(n.x, n.y)
		if !n.vertical {
			c.Text(x, y, n.name, s.Street)
			continue
		}
		row := y
		for _, r := range n.name {
			c.Text(x, row, string(r), s.Street)
			row++
		}
	}
	for _, l := range landmarks {
		x, y := m.cell(l.x, l.y)
		c.TextCentered(x, y, "["+l.name+"]", s.Landmark)
	}

	hx, hy := m.cell(herePosition.x, herePosition.y)
	c.TextCentered(hx, hy, "("+icons.Here()+")", s.Here)

	for i, loc := range m.locations {
		m.drawMarker(c, loc, i == m.highlight)
	}

	m.drawInfoBar(c)
	return c.String()
}

func (m Model) drawGrid(c *render.Canvas, st lipgloss.Style) {
	px, py := m.Pan()
	for y := range c.Height() {
		if mod(y-py, gridStepY) != 0 {
			continue
		}
		for x := range c.Width() {
			if mod(x-px, gridStepX) == 0 {
				c.Text(x, y, "·", st)
			}
		}
	}
}

func (m Model) drawStreets(c *render.Canvas, minor, main lipgloss.Style) {
	w, h := c.Width(), c.Height()
	for _, fy := range minorStreetsH {
		_, y := m.cell(0, fy)
		c.HLine(0, w-1, y, "─", minor)
	}
	for _, fx := range minorStreetsV {
		x, _ := m.cell(fx, 0)
		c.VLine(x, 0, h-1, "│", minor)
	}
	for _, fy := range mainStreetsH {
		_, y := m.cell(0, fy)
		c.HLine(0, w-1, y, "═", main)
	}
	for _, fx := range mainStreetsV {
		x, _ := m.cell(fx, 0)
		c.VLine(x, 0, h-1, "║", main)
	}
}

func (m Model) drawMarker(c *render.Canvas, loc catalog.Location, highlighted bool) {
	s := styles.T().S()
	x0, _, y := m.markerRect(loc)
	label, badge := markerLabel(loc)

	st := s.Marker
	if highlighted {
		st = s.Active
	}
	x := x0 + c.Text(x0, y, label, st)
	if badge != "" {
		c.Text(x, y, badge, s.Liked)
	}

	if !highlighted {
		return
	}
	tip := fmt.Sprintf("%s · %d곡 드랍됨", loc.Address, len(loc.Songs))
	if len(loc.Songs) == 1 {
		tip += " · " + loc.Songs[0].Title
	}
	c.TextCentered(x0+uniseg.StringWidth(label+badge)/2, y+1, tip, s.Muted)
}

func (m Model) drawInfoBar(c *render.Canvas) {
	s := styles.T().S()
	w := c.Width()
	c.Fill(0, 0, w, 1, " ", lipgloss.NewStyle())

	x := 1
	x += c.Text(x, 0, icons.Marker()+" ", s.Accent)
	x += c.Text(x, 0, m.opts.Here, s.Title)
	c.Text(x, 0, fmt.Sprintf("  드랍된 음악 %d곡", catalog.TotalSongs(m.locations)), s.Muted)

	label := compassLabel()
	c.Text(w-uniseg.StringWidth(label)-1, 0, label, s.Accent)
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
