package dial

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/testutil"
)

func testSongs() []catalog.Song {
	return []catalog.Song{
		{ID: "1", Title: "A", Artist: "x", Plays: 1200},
		{ID: "2", Title: "B", Artist: "y", Plays: 10},
		{ID: "3", Title: "C", Artist: "z"},
		{ID: "4", Title: "D", Artist: "w"},
	}
}

// 41x15 gives centre (20,7) and radius 6.
func newTestDial(opts Options) Model {
	m := New(opts)
	m.SetSize(41, 15)
	m.SetSongs(testSongs())
	m.SetFocused(true)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return testutil.Mouse(action, tea.MouseButtonLeft, x, y)
}

func TestItemCell_StartsAtTopClockwise(t *testing.T) {
	m := newTestDial(DefaultOptions())

	want := [][2]int{{20, 1}, {32, 7}, {20, 13}, {8, 7}}
	for i, w := range want {
		x, y := m.ItemCell(i)
		assert.Equal(t, w, [2]int{x, y}, "item %d", i)
	}
}

func TestItemCell_RadiusLimitedBySize(t *testing.T) {
	m := New(Options{Radius: 20})
	m.SetSize(41, 9)
	m.SetSongs(testSongs())

	// radius = (9-1)/2 - 1 = 3 rows
	x, y := m.ItemCell(0)
	assert.Equal(t, 20, x)
	assert.Equal(t, 1, y)
	x, _ = m.ItemCell(1)
	assert.Equal(t, 26, x)
}

func TestItemAt(t *testing.T) {
	m := newTestDial(DefaultOptions())

	i, ok := m.ItemAt(31, 7)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = m.ItemAt(20, 2)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = m.ItemAt(20, 7)
	assert.False(t, ok, "centre is far from every item")
}

func TestRotate_Wraps(t *testing.T) {
	m := newTestDial(DefaultOptions())

	m.Rotate(-1)
	assert.Equal(t, 3, m.Highlight())
	m.Rotate(2)
	assert.Equal(t, 1, m.Highlight())

	var empty Model
	empty.Rotate(1)
	assert.Equal(t, 0, empty.Highlight())
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestDial(DefaultOptions())

	r := m.Update(keyMsg("l"))
	assert.Equal(t, ActionMoved, r.Action)
	assert.Equal(t, "2", r.Song.ID)

	r = m.Update(keyMsg("k"))
	assert.Equal(t, ActionMoved, r.Action)
	assert.Equal(t, 0, r.Index)

	r = m.Update(keyMsg("enter"))
	assert.Equal(t, ActionSelect, r.Action)
	assert.Equal(t, "1", r.Song.ID)

	r = m.Update(keyMsg("esc"))
	assert.Equal(t, ActionClose, r.Action)
}

func TestUpdate_AlwaysVisibleIgnoresEsc(t *testing.T) {
	opts := DefaultOptions()
	opts.AlwaysVisible = true
	m := newTestDial(opts)

	assert.Equal(t, ActionNone, m.Update(keyMsg("esc")).Action)
}

func TestUpdate_UnfocusedIgnoresKeys(t *testing.T) {
	m := newTestDial(DefaultOptions())
	m.SetFocused(false)

	assert.Equal(t, ActionNone, m.Update(keyMsg("l")).Action)
	assert.Equal(t, 0, m.Highlight())
}

func TestUpdate_ClickSelectsNearest(t *testing.T) {
	m := newTestDial(DefaultOptions())

	m.Update(mouse(tea.MouseActionPress, 33, 7))
	r := m.Update(mouse(tea.MouseActionRelease, 33, 7))

	assert.Equal(t, ActionSelect, r.Action)
	assert.Equal(t, "2", r.Song.ID)
	assert.Equal(t, 1, m.Highlight())
}

func TestUpdate_DragIsNotAClick(t *testing.T) {
	m := newTestDial(DefaultOptions())

	m.Update(mouse(tea.MouseActionPress, 28, 7))
	m.Update(mouse(tea.MouseActionMotion, 32, 7))
	r := m.Update(mouse(tea.MouseActionRelease, 32, 7))

	assert.Equal(t, ActionNone, r.Action)
	assert.Equal(t, 0, m.Highlight())
}

func TestUpdate_ClickOnEmptySpace(t *testing.T) {
	m := newTestDial(DefaultOptions())

	m.Update(mouse(tea.MouseActionPress, 0, 0))
	r := m.Update(mouse(tea.MouseActionRelease, 0, 0))
	assert.Equal(t, ActionNone, r.Action)
}

func TestUpdate_Wheel(t *testing.T) {
	m := newTestDial(DefaultOptions())

	r := m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 0, 0))
	assert.Equal(t, ActionMoved, r.Action)
	assert.Equal(t, 1, m.Highlight())
}

func TestView(t *testing.T) {
	m := newTestDial(DefaultOptions())
	lines := strings.Split(testutil.StripANSI(m.View()), "\n")
	require.Len(t, lines, 15)

	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "주변 음악")
	assert.Contains(t, text, "4곡 발견")
	assert.Contains(t, text, "A - x")
	assert.Contains(t, text, "재생 1,200회")

	// highlighted item 0 at (20,1), plain item 1 at (32,7)
	assert.Equal(t, "[o]", string([]rune(lines[1])[19:22]))
	assert.Equal(t, "#", string([]rune(lines[7])[32]))
}

func TestView_Empty(t *testing.T) {
	m := New(DefaultOptions())
	m.SetSize(41, 15)
	assert.Contains(t, testutil.StripANSI(m.View()), "주변에 드랍된 음악이 없어요")
}
