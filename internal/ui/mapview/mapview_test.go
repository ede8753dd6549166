package mapview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/testutil"
)

func testLocations() []catalog.Location {
	songs := func(n int) []catalog.Song {
		out := make([]catalog.Song, n)
		for i := range out {
			out[i] = catalog.Song{ID: string(rune('a' + i)), Title: "Underwater"}
		}
		return out
	}
	return []catalog.Location{
		{ID: "1", Address: "서울특별시 중구 명동", Songs: songs(1)},
		{ID: "2", Address: "서울특별시 마포구 홍대", Songs: songs(2)},
		{ID: "3", Address: "서울특별시 강남구 역삼동", Songs: songs(8)},
	}
}

// 80x21: marker 1 "(# U)" at x 18-22 row 7, marker 2 at x 49-53 row 11,
// marker 3 "(# 8)" at x 57-61 row 5.
func newTestMap(settle time.Duration) Model {
	m := New(Options{Slop: 1, Settle: settle, Here: "강남구 역삼동"})
	m.SetSize(80, 21)
	m.SetLocations(testLocations(), "3")
	m.SetFocused(true)
	return m
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tap(m *Model, x, y int) Result {
	m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y))
	r, _ := m.Update(testutil.Mouse(tea.MouseActionRelease, tea.MouseButtonLeft, x, y))
	return r
}

func TestMarkerAt(t *testing.T) {
	m := newTestMap(0)

	tests := []struct {
		x, y int
		want int
		ok   bool
	}{
		{59, 5, 2, true},
		{56, 5, 2, true},
		{62, 5, 2, true},
		{63, 5, -1, false},
		{59, 6, -1, false},
		{20, 7, 0, true},
		{51, 11, 1, true},
	}
	for _, tt := range tests {
		got, ok := m.MarkerAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "(%d,%d)", tt.x, tt.y)
	}
}

func TestTapOpensMarker(t *testing.T) {
	m := newTestMap(0)

	r := tap(&m, 59, 5)
	assert.Equal(t, ActionOpen, r.Action)
	assert.Equal(t, "3", r.Location.ID)

	r = tap(&m, 20, 7)
	assert.Equal(t, ActionOpen, r.Action)
	assert.Equal(t, "1", r.Location.ID)
	loc, ok := m.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "1", loc.ID)
}

func TestTapWithinSlopStillOpens(t *testing.T) {
	m := newTestMap(0)

	m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, 59, 5))
	m.Update(testutil.Mouse(tea.MouseActionMotion, tea.MouseButtonNone, 60, 5))
	r, _ := m.Update(testutil.Mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 60, 5))

	assert.Equal(t, ActionOpen, r.Action)
	x, y := m.Pan()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestDragPansOneToOne(t *testing.T) {
	m := newTestMap(0)

	m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, 10, 10))
	r, _ := m.Update(testutil.Mouse(tea.MouseActionMotion, tea.MouseButtonNone, 15, 12))
	assert.Equal(t, ActionPanned, r.Action)
	assert.True(t, m.Dragging())

	r, _ = m.Update(testutil.Mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 15, 12))
	assert.Equal(t, ActionPanned, r.Action, "a drag never opens a marker")
	assert.False(t, m.Dragging())

	x, y := m.Pan()
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, y)

	i, ok := m.MarkerAt(64, 7)
	require.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestDragContinuesFromPreviousPan(t *testing.T) {
	m := newTestMap(0)
	m.PanBy(3, 1)

	m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, 40, 10))
	m.Update(testutil.Mouse(tea.MouseActionMotion, tea.MouseButtonNone, 30, 10))
	m.Update(testutil.Mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 30, 10))

	x, y := m.Pan()
	assert.Equal(t, -7, x)
	assert.Equal(t, 1, y)
}

func TestKeysPan(t *testing.T) {
	m := newTestMap(0)

	for _, k := range []string{"h", "h", "j"} {
		r, _ := m.Update(key(k))
		assert.Equal(t, ActionPanned, r.Action)
	}
	x, y := m.Pan()
	assert.Equal(t, 2*panStepX, x)
	assert.Equal(t, -panStepY, y)

	m.Update(key("0"))
	x, y = m.Pan()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestRecenterSettles(t *testing.T) {
	m := newTestMap(300 * time.Millisecond)
	m.PanBy(20, 6)

	_, cmd := m.Update(key("0"))
	assert.True(t, m.Settling())
	assert.NotNil(t, cmd, "recentre schedules a frame")

	r, cmd := m.Update(FrameMsg{})
	assert.Equal(t, ActionPanned, r.Action)
	assert.NotNil(t, cmd)
	x, _ := m.Pan()
	assert.Less(t, x, 20)
	assert.Positive(t, x)

	m.Step(time.Second)
	assert.False(t, m.Settling())
	x, y := m.Pan()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestPressInterruptsSettle(t *testing.T) {
	m := newTestMap(300 * time.Millisecond)
	m.PanBy(20, 0)
	m.Recenter()
	m.Step(100 * time.Millisecond)

	m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, 0, 10))
	assert.False(t, m.Settling())
}

func TestCompassTapRecenters(t *testing.T) {
	m := newTestMap(0)
	m.PanBy(8, 3)

	r := tap(&m, 77, 0)
	assert.Equal(t, ActionPanned, r.Action)
	x, y := m.Pan()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestNextLocationAndOpen(t *testing.T) {
	m := newTestMap(0)

	r, _ := m.Update(key("n"))
	assert.Equal(t, ActionHighlight, r.Action)
	assert.Equal(t, "1", r.Location.ID)

	r, _ = m.Update(key("enter"))
	assert.Equal(t, ActionOpen, r.Action)
	assert.Equal(t, "1", r.Location.ID)
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := newTestMap(0)
	m.SetFocused(false)

	r, _ := m.Update(key("h"))
	assert.Equal(t, ActionNone, r.Action)
	x, _ := m.Pan()
	assert.Equal(t, 0, x)
}

func TestView(t *testing.T) {
	m := newTestMap(0)
	lines := strings.Split(testutil.StripANSI(m.View()), "\n")
	require.Len(t, lines, 21)

	assert.Contains(t, lines[0], "강남구 역삼동")
	assert.Contains(t, lines[0], "드랍된 음악 11곡")
	assert.Contains(t, lines[0], "[N]")
	assert.Contains(t, lines[5], "(# 8)")
	assert.Contains(t, lines[6], "8곡 드랍됨", "highlighted marker shows its tooltip")
	assert.Contains(t, lines[7], "(# U)")
	assert.Contains(t, lines[11], "(# 2)")
	assert.Contains(t, strings.Join(lines, "\n"), "강남대로")
	assert.Contains(t, strings.Join(lines, "\n"), "[선릉역]")
}

func TestView_Panned(t *testing.T) {
	m := newTestMap(0)
	m.PanBy(0, 2)
	lines := strings.Split(testutil.StripANSI(m.View()), "\n")
	assert.Contains(t, lines[7], "(# 8)")
	assert.Contains(t, lines[0], "드랍된 음악", "info bar does not pan")
}
