// Package playerbar renders the mini player shown once a song is selected.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/player"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Height is the player bar height: three content rows and a border.
const Height = 5

// Content origin inside the border and padding.
const (
	contentX = 2
	contentY = 1
)

const controlGap = "  "

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Paused   bool
	Song     catalog.Song
	Position time.Duration
	Duration time.Duration
	HasPrev  bool
	HasNext  bool
}

// Active reports whether there is anything to show.
func (s State) Active() bool {
	return s.Playing || s.Paused
}

// NewState constructs a State from the player.
// Returns an empty State if the player is stopped.
func NewState(p player.Interface) State {
	song, ok := p.Song()
	if !ok {
		return State{}
	}
	idx := p.QueueIndex()
	return State{
		Playing:  p.State() == player.Playing,
		Paused:   p.State() == player.Paused,
		Song:     song,
		Position: p.Position(),
		Duration: p.Duration(),
		HasPrev:  idx > 0,
		HasNext:  idx < len(p.Queue())-1,
	}
}

// Render returns the player bar for the given width, or "" when stopped.
func Render(s State, width int) string {
	if !s.Active() || width < 10 {
		return ""
	}
	inner := innerWidth(width)
	lines := []string{
		titleLine(s, inner),
		RenderProgressBar(s.Position, s.Duration, inner),
		controlLine(s, inner),
	}
	return styles.PanelStyle(false).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func innerWidth(width int) int {
	return max(width-2*contentX, 0)
}

func likeLabel(song catalog.Song) string {
	return icons.Like(song.Liked) + " " + catalog.CompactCount(song.Likes)
}

func titleLine(s State, width int) string {
	st := styles.T().S()
	like := st.Muted.Render(likeLabel(s.Song))
	if s.Song.Liked {
		like = st.Liked.Render(likeLabel(s.Song))
	}
	avail := width - lipgloss.Width(like) - 1
	title := render.Truncate(s.Song.Title, avail)
	left := st.Title.Render(title)
	if rest := avail - lipgloss.Width(title) - 3; rest > 0 && s.Song.Artist != "" {
		left += st.Muted.Render(" - " + render.Truncate(s.Song.Artist, rest))
	}
	return render.Row(left, like, width)
}

func controls(s State) []string {
	return []string{icons.Prev(), icons.PlayPause(s.Playing), icons.Next()}
}

func controlLine(s State, width int) string {
	st := styles.T().S()
	c := controls(s)

	prev := st.Subtle.Render(c[0])
	if s.HasPrev {
		prev = st.Base.Render(c[0])
	}
	next := st.Subtle.Render(c[2])
	if s.HasNext {
		next = st.Base.Render(c[2])
	}
	line := prev + controlGap + st.Accent.Render(c[1]) + controlGap + next

	if s.Song.Comment != "" || s.Song.DroppedBy != "" {
		note := icons.FormatComment(s.Song.Comment)
		if s.Song.DroppedBy != "" {
			note += " @" + s.Song.DroppedBy
		}
		avail := width - lipgloss.Width(line) - 3
		if avail > 0 {
			line += "   " + st.Muted.Render(render.Truncate(note, avail))
		}
	}
	return line
}
