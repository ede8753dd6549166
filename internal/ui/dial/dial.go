// Package dial lays out a location's songs around a ring.
package dial

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/gesture"
	"github.com/llehouerou/songdrop/internal/ui/layout"
)

// innerRatio is the inner ring's radius relative to the outer ring.
const innerRatio = 0.58

// Options configures the dial.
type Options struct {
	Radius        int     // preferred ring radius in rows
	HitRadius     float64 // how close, in rows, a click must land to an item
	AlwaysVisible bool    // esc does not close the dial
	Slop          float64
}

// DefaultOptions returns the standard dial options.
func DefaultOptions() Options {
	return Options{Radius: 6, HitRadius: 1.5, Slop: gesture.DefaultSlop}
}

// Action is what an Update did.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionSelect
	ActionClose
)

// Result reports the outcome of an Update.
type Result struct {
	Action Action
	Song   catalog.Song
	Index  int
}

// Model is the radial song dial.
type Model struct {
	ui.Base
	songs     []catalog.Song
	highlight int
	opts      Options
	keys      *keymap.Resolver
	tracker   gesture.Tracker
}

// New creates a dial.
func New(opts Options) Model {
	def := DefaultOptions()
	if opts.Radius <= 0 {
		opts.Radius = def.Radius
	}
	if opts.HitRadius <= 0 {
		opts.HitRadius = def.HitRadius
	}
	return Model{
		opts:    opts,
		keys:    keymap.ForContexts("dial"),
		tracker: gesture.New(opts.Slop, gesture.AxisBoth),
	}
}

// SetSongs replaces the songs on the dial, keeping the highlight in range.
func (m *Model) SetSongs(songs []catalog.Song) {
	m.songs = songs
	if m.highlight >= len(songs) {
		m.highlight = 0
	}
}

// Songs returns the songs on the dial.
func (m Model) Songs() []catalog.Song {
	return m.songs
}

// Highlight returns the highlighted index.
func (m Model) Highlight() int {
	return m.highlight
}

// Highlighted returns the highlighted song.
func (m Model) Highlighted() (catalog.Song, bool) {
	if len(m.songs) == 0 {
		return catalog.Song{}, false
	}
	return m.songs[m.highlight], true
}

// Rotate moves the highlight by delta, wrapping around the ring.
func (m *Model) Rotate(delta int) {
	n := len(m.songs)
	if n == 0 {
		return
	}
	m.highlight = ((m.highlight+delta)%n + n) % n
}

// ring returns the dial centre and outer radius in rows. Columns are
// stretched by the cell aspect when positions are mapped to the screen.
func (m Model) ring() (layout.Point, float64) {
	w, h := m.Size()
	center := layout.Point{X: float64(w-1) / 2, Y: float64(h-1) / 2}
	radius := min(
		float64(m.opts.Radius),
		float64(h-1)/2-1,
		(float64(w-1)/2-2)/ui.CellAspect,
	)
	return center, max(radius, 0)
}

// toScreen maps a point on the square ring to a terminal cell.
func toScreen(center, p layout.Point) (x, y int) {
	return int(math.Round(center.X + (p.X-center.X)*ui.CellAspect)), int(math.Round(p.Y))
}

// ItemCell returns the cell where item i is drawn.
func (m Model) ItemCell(i int) (x, y int) {
	center, radius := m.ring()
	return toScreen(center, layout.RadialPosition(i, len(m.songs), center, radius))
}

// ItemAt returns the item nearest to a cell, if one lies within the hit radius.
func (m Model) ItemAt(x, y int) (int, bool) {
	best, bestDist := -1, m.opts.HitRadius
	for i := range m.songs {
		ix, iy := m.ItemCell(i)
		d := layout.Distance(
			layout.Point{X: float64(x) / ui.CellAspect, Y: float64(y)},
			layout.Point{X: float64(ix) / ui.CellAspect, Y: float64(iy)},
		)
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// Update handles keys and mouse events in dial-local coordinates.
func (m *Model) Update(msg tea.Msg) Result {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return Result{}
		}
		switch m.keys.Resolve(msg.String()) { //nolint:exhaustive // unbound actions are ignored
		case keymap.ActionPrevItem:
			m.Rotate(-1)
			return m.result(ActionMoved)
		case keymap.ActionNextItem:
			m.Rotate(1)
			return m.result(ActionMoved)
		case keymap.ActionSelect:
			return m.result(ActionSelect)
		case keymap.ActionBack:
			if !m.opts.AlwaysVisible {
				return Result{Action: ActionClose}
			}
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return Result{}
}

func (m *Model) handleMouse(msg tea.MouseMsg) Result {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.Rotate(-1)
		return m.result(ActionMoved)
	case msg.Button == tea.MouseButtonWheelDown:
		m.Rotate(1)
		return m.result(ActionMoved)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.tracker.Begin(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.tracker.Move(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		if !m.tracker.Active() || !m.tracker.End(msg.X, msg.Y) {
			return Result{}
		}
		if i, ok := m.ItemAt(msg.X, msg.Y); ok {
			m.highlight = i
			return m.result(ActionSelect)
		}
	}
	return Result{}
}

func (m Model) result(action Action) Result {
	song, ok := m.Highlighted()
	if !ok {
		return Result{}
	}
	return Result{Action: action, Song: song, Index: m.highlight}
}
