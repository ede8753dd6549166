// Package mapview draws the neighbourhood map with dropped-song markers and
// lets the user pan it and open a location.
package mapview

import (
	"math"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/gesture"
)

const (
	frameInterval = 16 * time.Millisecond
	panStepX      = 4
	panStepY      = 2
)

// Action is what an Update did.
type Action int

const (
	ActionNone     Action = iota
	ActionPanned          // the map moved
	ActionOpen            // a location was chosen
	ActionHighlight       // keyboard highlight moved to another location
)

// Result reports the outcome of an Update.
type Result struct {
	Action   Action
	Location catalog.Location
}

// FrameMsg drives the recentre animation.
type FrameMsg struct{}

// Options configures the map.
type Options struct {
	Slop   float64
	Settle time.Duration
	Here   string // label of the area around the current position
}

type vec struct{ x, y float64 }

type settle struct {
	active   bool
	from, to vec
	elapsed  time.Duration
	duration time.Duration
}

// Model is the pannable map.
type Model struct {
	ui.Base
	opts      Options
	keys      *keymap.Resolver
	locations []catalog.Location
	highlight int // index into locations, -1 for none

	pan      vec // content offset in cells
	baseline vec
	tracker  gesture.Tracker
	settle   settle
	ticking  bool
}

// New creates a map.
func New(opts Options) Model {
	opts.Settle = max(0, opts.Settle)
	return Model{
		opts:      opts,
		keys:      keymap.ForContexts("map"),
		tracker:   gesture.New(opts.Slop, gesture.AxisBoth),
		highlight: -1,
	}
}

// SetLocations replaces the markers. highlightID selects the location the
// keyboard starts on.
func (m *Model) SetLocations(locations []catalog.Location, highlightID string) {
	m.locations = locations
	m.highlight = slices.IndexFunc(locations, func(l catalog.Location) bool {
		return l.ID == highlightID
	})
}

// Highlighted returns the keyboard-highlighted location.
func (m Model) Highlighted() (catalog.Location, bool) {
	if m.highlight < 0 || m.highlight >= len(m.locations) {
		return catalog.Location{}, false
	}
	return m.locations[m.highlight], true
}

// Pan returns the current content offset, rounded to cells.
func (m Model) Pan() (x, y int) {
	return int(math.Round(m.pan.x)), int(math.Round(m.pan.y))
}

// Dragging reports whether a pointer is held on the map.
func (m Model) Dragging() bool {
	return m.tracker.Active()
}

// Settling reports whether the recentre animation is running.
func (m Model) Settling() bool {
	return m.settle.active
}

// CancelDrag forgets a held pointer. The map stays where it was dragged.
func (m *Model) CancelDrag() {
	m.tracker.Cancel()
}

// PanBy moves the content by (dx, dy) cells.
func (m *Model) PanBy(dx, dy int) {
	m.settle.active = false
	m.pan.x += float64(dx)
	m.pan.y += float64(dy)
}

// Recenter animates the map back to its origin.
func (m *Model) Recenter() {
	if m.opts.Settle == 0 || m.pan == (vec{}) {
		m.pan = vec{}
		m.settle.active = false
		return
	}
	m.settle = settle{active: true, from: m.pan, duration: m.opts.Settle}
}

// Step advances the recentre animation by dt.
func (m *Model) Step(dt time.Duration) {
	if !m.settle.active {
		return
	}
	m.settle.elapsed += dt
	t := min(1, float64(m.settle.elapsed)/float64(m.settle.duration))
	u := 1 - t
	e := 1 - u*u*u
	m.pan = vec{
		x: m.settle.from.x + (m.settle.to.x-m.settle.from.x)*e,
		y: m.settle.from.y + (m.settle.to.y-m.settle.from.y)*e,
	}
	if t >= 1 {
		m.pan = m.settle.to
		m.settle.active = false
	}
}

// Update handles keys, mouse events in map-local coordinates and frames.
func (m *Model) Update(msg tea.Msg) (Result, tea.Cmd) {
	var res Result
	switch msg := msg.(type) {
	case FrameMsg:
		m.ticking = false
		m.Step(frameInterval)
		res.Action = ActionPanned
	case tea.MouseMsg:
		res = m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return Result{}, nil
		}
		res = m.handleKey(msg.String())
	default:
		return Result{}, nil
	}
	return res, m.animate()
}

func (m *Model) animate() tea.Cmd {
	if !m.settle.active || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return FrameMsg{} })
}

func (m *Model) handleKey(key string) Result {
	switch m.keys.Resolve(key) { //nolint:exhaustive // unbound actions are ignored
	case keymap.ActionPanLeft:
		m.PanBy(panStepX, 0)
	case keymap.ActionPanRight:
		m.PanBy(-panStepX, 0)
	case keymap.ActionPanUp:
		m.PanBy(0, panStepY)
	case keymap.ActionPanDown:
		m.PanBy(0, -panStepY)
	case keymap.ActionRecenter:
		m.Recenter()
	case keymap.ActionNextLocation:
		if len(m.locations) == 0 {
			return Result{}
		}
		m.highlight = (m.highlight + 1) % len(m.locations)
		return Result{Action: ActionHighlight, Location: m.locations[m.highlight]}
	case keymap.ActionOpenNearby:
		if loc, ok := m.Highlighted(); ok {
			return Result{Action: ActionOpen, Location: loc}
		}
		return Result{}
	default:
		return Result{}
	}
	return Result{Action: ActionPanned}
}

func (m *Model) handleMouse(msg tea.MouseMsg) Result {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Result{}
		}
		m.settle.active = false
		m.baseline = m.pan
		m.tracker.Begin(msg.X, msg.Y)
	case tea.MouseActionMotion:
		if !m.tracker.Active() {
			return Result{}
		}
		m.tracker.Move(msg.X, msg.Y)
		if m.tracker.Dragging() {
			sx, sy := m.tracker.Start()
			m.pan = vec{
				x: m.baseline.x + float64(msg.X-sx),
				y: m.baseline.y + float64(msg.Y-sy),
			}
			return Result{Action: ActionPanned}
		}
	case tea.MouseActionRelease:
		if !m.tracker.Active() {
			return Result{}
		}
		if !m.tracker.End(msg.X, msg.Y) {
			return Result{Action: ActionPanned}
		}
		// a tap: the map stays where it was pressed
		m.pan = m.baseline
		if m.onCompass(msg.X, msg.Y) {
			m.Recenter()
			return Result{Action: ActionPanned}
		}
		if i, ok := m.MarkerAt(msg.X, msg.Y); ok {
			m.highlight = i
			return Result{Action: ActionOpen, Location: m.locations[i]}
		}
	}
	return Result{}
}
