package playerbar

import "github.com/charmbracelet/lipgloss"

// Control is a clickable part of the player bar.
type Control int

const (
	ControlNone Control = iota
	ControlPrev
	ControlPlayPause
	ControlNext
	ControlLike
	ControlSeek
)

// Hit is the result of HitTest. Ratio is the seek target in [0, 1] for
// ControlSeek.
type Hit struct {
	Control Control
	Ratio   float64
}

// HitTest maps a position relative to the bar's top-left corner to the
// control under it.
func HitTest(s State, width, x, y int) Hit {
	if !s.Active() {
		return Hit{}
	}
	inner := innerWidth(width)
	cx, cy := x-contentX, y-contentY
	if cx < 0 || cx >= inner {
		return Hit{}
	}

	switch cy {
	case 0:
		if cx >= inner-displayWidth(likeLabel(s.Song)) {
			return Hit{Control: ControlLike}
		}
	case 1:
		start := barStart(s.Position)
		w := progressWidth(s.Position, s.Duration, inner)
		if w >= 3 && cx >= start && cx < start+w {
			return Hit{Control: ControlSeek, Ratio: float64(cx-start) / float64(max(w-1, 1))}
		}
	case 2:
		col := 0
		for i, c := range controls(s) {
			w := displayWidth(c)
			if cx >= col && cx < col+w {
				return Hit{Control: ControlPrev + Control(i)}
			}
			col += w + len(controlGap)
		}
	}
	return Hit{}
}

func displayWidth(s string) int {
	return lipgloss.Width(s)
}
