// Package carousel provides a horizontally scrolling window over a list of
// items. The window moves by pointer drags that snap to the nearest item,
// by previous/next steps and by jumping to a page.
//
// The navigation state (current index, live offset, drag) is plain data
// driven by explicit calls, so it can be exercised without a terminal.
// Update adapts Bubble Tea messages onto those calls and View draws the
// strip from the live offset.
package carousel

import (
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/gesture"
)

// Defaults used when Options leave a field at zero.
const (
	DefaultPageSize = 3
	DefaultGain     = 2.0
	DefaultSettle   = 300 * time.Millisecond
)

var lastID atomic.Int64

// Options configures a carousel.
type Options struct {
	PageSize int     // items visible at once
	Gain     float64 // pointer movement multiplier while dragging
	Slop     float64 // cells a pointer may move and still count as a tap

	// Settle is the snap animation length. Zero snaps instantly; use
	// DefaultOptions for the standard animation.
	Settle time.Duration

	Title     string
	Counter   func(n int) string // header count label, "n items" when nil
	EmptyText string
}

// DefaultOptions returns the standard configuration: three items per page,
// a drag gain of two, a one cell tap slop and a 300ms settle.
func DefaultOptions() Options {
	return Options{
		PageSize: DefaultPageSize,
		Gain:     DefaultGain,
		Slop:     gesture.DefaultSlop,
		Settle:   DefaultSettle,
	}
}

// settle animates the offset towards a target with an ease-out curve.
type settle struct {
	active   bool
	from, to float64
	elapsed  time.Duration
	duration time.Duration
}

// Model is a carousel over items of type T.
type Model[T any] struct {
	ui.Base

	id       int64
	items    []T
	pageSize int
	gain     float64
	opts     Options
	keys     *keymap.Resolver

	current  int
	offset   float64 // scroll position of the strip's left edge, in cells
	dragging bool
	originX  int
	lastX    int
	baseline float64
	tracker  gesture.Tracker
	settle   settle
	ticking  bool
}

// New creates an empty carousel. The page size is fixed for the lifetime of
// the model.
func New[T any](opts Options) Model[T] {
	if opts.PageSize < 1 {
		opts.PageSize = 1
	}
	if opts.Gain <= 0 {
		opts.Gain = DefaultGain
	}
	opts.Settle = max(0, opts.Settle)

	return Model[T]{
		id:       lastID.Add(1),
		pageSize: opts.PageSize,
		gain:     opts.Gain,
		opts:     opts,
		keys:     keymap.ForContexts("carousel"),
		tracker:  gesture.New(opts.Slop, gesture.AxisHorizontal),
	}
}

// SetItems replaces the items. The carousel keeps its own copy. The current
// index is clamped if the list shrank.
func (m *Model[T]) SetItems(items []T) {
	m.items = slices.Clone(items)
	m.current = clampInt(m.current, 0, m.MaxIndex())
	if !m.dragging {
		m.snapOffset()
	}
}

// Items returns the carousel's copy of the items.
func (m Model[T]) Items() []T {
	return m.items
}

// SetSize sets the display size. The item width is derived from the width,
// so the resting offset is recomputed; a drag in progress keeps its offset.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if !m.dragging {
		m.snapOffset()
	}
}

// snapOffset puts the offset at the current index without animation.
func (m *Model[T]) snapOffset() {
	m.settle.active = false
	m.offset = float64(m.current * m.ItemWidth())
}

// ItemWidth returns the width of one item in cells.
func (m Model[T]) ItemWidth() int {
	return m.Width() / m.pageSize
}

// BeginDrag starts a drag at pointer column x. A settle in flight stops
// where it is and the drag continues from there.
func (m *Model[T]) BeginDrag(x int) {
	m.settle.active = false
	m.dragging = true
	m.originX = x
	m.lastX = x
	m.baseline = m.offset
	m.tracker.Begin(x, 0)
}

// ContinueDrag moves the strip with the pointer. The offset is not clamped,
// so the strip may overscroll until the drag ends.
func (m *Model[T]) ContinueDrag(x int) {
	if !m.dragging {
		return
	}
	m.lastX = x
	m.tracker.Move(x, 0)
	m.offset = m.baseline - float64(x-m.originX)*m.gain
}

// EndDrag snaps to the item nearest the live offset, rounding halves up,
// and starts settling towards it. The index is final as soon as EndDrag
// returns.
func (m *Model[T]) EndDrag() {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.tracker.End(m.lastX, 0)

	if w := m.ItemWidth(); w > 0 {
		raw := int(math.Floor(m.offset/float64(w) + 0.5))
		m.current = clampInt(raw, 0, m.MaxIndex())
	}
	m.startSettle()
}

// CancelDrag abandons a drag without choosing a new index; the strip snaps
// back to the current item.
func (m *Model[T]) CancelDrag() {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.tracker.Cancel()
	m.snapOffset()
}

// GoToPrevious moves the window back by one item. It is ignored while
// dragging and reports whether the index changed.
func (m *Model[T]) GoToPrevious() bool {
	return m.goTo(m.current - 1)
}

// GoToNext moves the window forward by one item. It is ignored while
// dragging and reports whether the index changed.
func (m *Model[T]) GoToNext() bool {
	return m.goTo(m.current + 1)
}

// JumpToPage moves the window to the first item of page p, clamped so the
// window stays full. It is ignored while dragging.
func (m *Model[T]) JumpToPage(p int) bool {
	return m.goTo(p * m.pageSize)
}

func (m *Model[T]) goTo(index int) bool {
	if m.dragging {
		return false
	}
	next := clampInt(index, 0, m.MaxIndex())
	if next == m.current {
		return false
	}
	m.current = next
	m.startSettle()
	return true
}

func (m *Model[T]) startSettle() {
	target := float64(m.current * m.ItemWidth())
	if m.opts.Settle <= 0 || m.offset == target {
		m.settle.active = false
		m.offset = target
		return
	}
	m.settle = settle{
		active:   true,
		from:     m.offset,
		to:       target,
		duration: m.opts.Settle,
	}
}

// Step advances the settle animation by dt.
func (m *Model[T]) Step(dt time.Duration) {
	if !m.settle.active {
		return
	}
	m.settle.elapsed += dt
	t := min(1, float64(m.settle.elapsed)/float64(m.settle.duration))
	m.offset = m.settle.from + (m.settle.to-m.settle.from)*easeOutCubic(t)
	if t >= 1 {
		m.offset = m.settle.to
		m.settle.active = false
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// VisibleItems returns the items in the window. The result shares memory
// with the carousel's copy and must not be modified.
func (m Model[T]) VisibleItems() []T {
	if len(m.items) == 0 {
		return nil
	}
	end := min(m.current+m.pageSize, len(m.items))
	return m.items[m.current:end]
}

// Activate returns the visible item at slot. Nothing is returned when the
// current or last pointer gesture was a drag, so releasing a drag over an
// item does not also select it.
func (m Model[T]) Activate(slot int) (T, bool) {
	var zero T
	if m.tracker.Dragging() {
		return zero, false
	}
	visible := m.VisibleItems()
	if slot < 0 || slot >= len(visible) {
		return zero, false
	}
	return visible[slot], true
}

func (m Model[T]) CurrentIndex() int { return m.current }
func (m Model[T]) Len() int          { return len(m.items) }
func (m Model[T]) PageSize() int     { return m.pageSize }
func (m Model[T]) Offset() float64   { return m.offset }
func (m Model[T]) Dragging() bool    { return m.dragging }
func (m Model[T]) Settling() bool    { return m.settle.active }

// MaxIndex is the largest index the window can start at.
func (m Model[T]) MaxIndex() int {
	return max(0, len(m.items)-m.pageSize)
}

// PageCount returns the number of pages, rounding a partial page up.
func (m Model[T]) PageCount() int {
	return (len(m.items) + m.pageSize - 1) / m.pageSize
}

// CurrentPage returns the page the window is on. A window pushed against
// the end of the list belongs to the last page even when it does not start
// on a page boundary.
func (m Model[T]) CurrentPage() int {
	if len(m.items) > 0 && m.current == m.MaxIndex() {
		return m.PageCount() - 1
	}
	return m.current / m.pageSize
}

func (m Model[T]) CanGoPrevious() bool {
	return m.current > 0
}

func (m Model[T]) CanGoNext() bool {
	return m.current < m.MaxIndex()
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
