package dial

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/layout"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// View draws spokes, both rings, the songs and the centre caption.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	c := render.NewCanvas(w, h)
	center, radius := m.ring()
	cx, cy := toScreen(center, center)

	if len(m.songs) == 0 || radius < 1 {
		c.TextCentered(cx, cy, "주변에 드랍된 음악이 없어요", s.Muted)
		return c.String()
	}

	for i := range m.songs {
		x, y := m.ItemCell(i)
		c.Line(cx, cy, x, y, 2, ".", s.Subtle)
	}
	drawRing(c, center, radius*innerRatio, "∘", s.Subtle)
	drawRing(c, center, radius, "∙", s.Minor)

	for i := range m.songs {
		x, y := m.ItemCell(i)
		if i == m.highlight {
			c.Text(x-1, y, "["+icons.Here()+"]", s.Here)
			continue
		}
		c.Text(x, y, icons.Music(), s.Marker)
	}

	m.drawCaption(c, cx, cy, int(radius*innerRatio*2*ui.CellAspect))
	return c.String()
}

type captionLine struct {
	text  string
	style lipgloss.Style
}

func (m Model) drawCaption(c *render.Canvas, cx, cy, innerWidth int) {
	s := styles.T().S()
	lines := []captionLine{
		{"주변 음악", s.Accent},
		{fmt.Sprintf("%d곡 발견", len(m.songs)), s.Base},
	}
	if song, ok := m.Highlighted(); ok {
		lines = append(lines,
			captionLine{song.Title + " - " + song.Artist, s.Title},
			captionLine{"재생 " + catalog.GroupedCount(song.Plays) + "회", s.Muted},
		)
	}

	top := cy - len(lines)/2
	for i, line := range lines {
		text := render.Truncate(line.text, max(innerWidth, 4))
		c.TextCentered(cx, top+i, text, line.style)
	}
}

func drawRing(c *render.Canvas, center layout.Point, radius float64, glyph string, st lipgloss.Style) {
	if radius < 1 {
		return
	}
	steps := int(math.Ceil(2 * math.Pi * radius * 4))
	for i := range steps {
		p := layout.RadialPosition(i, steps, center, radius)
		x, y := toScreen(center, p)
		if c.At(x, y) == " " {
			c.Text(x, y, glyph, st)
		}
	}
}
