package droppage

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/action"
	"github.com/llehouerou/songdrop/internal/ui/testutil"
)

const (
	testWidth  = 60
	testHeight = 20
	// tags wrap onto two rows at 60 columns
	testListTop = 7
)

func newTestPage(t *testing.T) *Model {
	t.Helper()
	seed := catalog.SampleData(time.Now())
	m := New()
	m.SetSize(testWidth, testHeight)
	m.SetData(seed.Library, seed.Tags)
	m.SetTarget("강남구 역삼동")
	m.SetFocused(true)
	return &m
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func key(m *Model, k string) tea.Cmd {
	switch k {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	case "tab":
		return m.Update(tea.KeyMsg{Type: tea.KeyTab})
	case "shift+tab":
		return m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	case "down":
		return m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func press(x, y int) tea.MouseMsg {
	return testutil.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
}

func resultIDs(m *Model) []string {
	var ids []string
	for _, s := range m.Results() {
		ids = append(ids, s.ID)
	}
	return ids
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "droppage", msg.Source)
	return msg.Action
}

func TestNew_StartsEmptyInSearch(t *testing.T) {
	m := newTestPage(t)
	assert.Equal(t, ZoneSearch, m.Zone())
	assert.True(t, m.CapturesInput())
	assert.Empty(t, m.Results())
	assert.Equal(t, testListTop, m.listTop())
}

func TestSearch_Typing(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "summer")
	assert.Equal(t, "summer", m.Query())
	assert.Equal(t, []string{"lib-7"}, resultIDs(m))

	typeText(m, "x")
	assert.Equal(t, []string{"lib-7"}, resultIDs(m), "a stray letter still matches")

	typeText(m, " zzz")
	assert.Empty(t, m.Results())
}

func TestSearch_SingleLetterBindingsAreTyped(t *testing.T) {
	m := newTestPage(t)
	for _, k := range []string{"q", "D", "j", "s"} {
		key(m, k)
	}
	assert.Equal(t, "qDjs", m.Query())
	assert.Equal(t, ZoneSearch, m.Zone())
}

func TestTags_KeyboardToggle(t *testing.T) {
	m := newTestPage(t)
	key(m, "esc")
	require.Equal(t, ZoneTags, m.Zone())
	assert.False(t, m.CapturesInput())

	key(m, "l")
	key(m, "l")
	key(m, "enter")
	assert.Equal(t, []string{"Spicy"}, m.SelectedTags())
	assert.Equal(t, []string{"lib-2"}, resultIDs(m))

	key(m, "x")
	assert.Empty(t, m.SelectedTags())
}

func TestTags_CursorClamped(t *testing.T) {
	m := newTestPage(t)
	m.SetZone(ZoneTags)
	key(m, "h")
	key(m, "enter")
	assert.Equal(t, []string{"(여자)아이들"}, m.SelectedTags())

	for range 20 {
		key(m, "l")
	}
	key(m, "enter")
	assert.Equal(t, []string{"(여자)아이들", "쇼핑"}, m.SelectedTags())
}

func TestTags_MouseToggle(t *testing.T) {
	m := newTestPage(t)
	// "[여름]" is the second chip on the first tag row
	m.Update(press(15, 3))
	assert.Equal(t, ZoneTags, m.Zone())
	assert.Equal(t, []string{"여름"}, m.SelectedTags())
	assert.Equal(t, []string{"lib-1", "lib-3", "lib-7"}, resultIDs(m))

	// "[여행]" wrapped to the second row
	m.Update(press(10, 4))
	assert.Equal(t, []string{"여름", "여행"}, m.SelectedTags())
	assert.Equal(t, []string{"lib-1", "lib-3", "lib-5", "lib-7"}, resultIDs(m))

	// the gap between chips is inert
	m.Update(press(14, 3))
	assert.Len(t, m.SelectedTags(), 2)
}

func TestQueryAndTagsCombine(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "shy")
	m.Update(press(15, 3))
	assert.Equal(t, []string{"lib-3"}, resultIDs(m))
}

func TestResults_Keys(t *testing.T) {
	m := newTestPage(t)
	m.Update(press(15, 3)) // 여름
	m.SetZone(ZoneResults)

	key(m, "j")
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "lib-3", sel.ID)

	play, ok := actionOf(t, key(m, "enter")).(Play)
	require.True(t, ok)
	assert.Equal(t, 1, play.Index)
	assert.Equal(t, []string{"lib-1", "lib-3", "lib-7"}, []string{play.Queue[0].ID, play.Queue[1].ID, play.Queue[2].ID})

	drop, ok := actionOf(t, key(m, "D")).(Drop)
	require.True(t, ok)
	assert.Equal(t, "lib-3", drop.Song.ID)

	key(m, "k")
	key(m, "k")
	assert.Equal(t, ZoneTags, m.Zone(), "moving up from the first result enters the tags")
}

func TestResults_NoActionWhenEmpty(t *testing.T) {
	m := newTestPage(t)
	m.SetZone(ZoneResults)
	assert.Nil(t, key(m, "D"))
	assert.Nil(t, key(m, "enter"))
}

func TestSearch_EnterMovesToResults(t *testing.T) {
	m := newTestPage(t)
	key(m, "enter")
	assert.Equal(t, ZoneTags, m.Zone(), "no results yet")

	m.SetZone(ZoneSearch)
	typeText(m, "spicy")
	key(m, "enter")
	assert.Equal(t, ZoneResults, m.Zone())
}

func TestZones_TabCycles(t *testing.T) {
	m := newTestPage(t)
	key(m, "tab")
	assert.Equal(t, ZoneTags, m.Zone())
	key(m, "tab")
	assert.Equal(t, ZoneResults, m.Zone())
	key(m, "tab")
	assert.Equal(t, ZoneSearch, m.Zone())
	key(m, "shift+tab")
	assert.Equal(t, ZoneResults, m.Zone())
	key(m, "/")
	assert.Equal(t, ZoneSearch, m.Zone())
}

func TestResults_Mouse(t *testing.T) {
	m := newTestPage(t)
	m.Update(press(15, 3)) // 여름

	assert.Nil(t, m.Update(press(5, testListTop+2)))
	assert.Equal(t, ZoneResults, m.Zone())
	sel, _ := m.Selected()
	assert.Equal(t, "lib-7", sel.ID)

	play, ok := actionOf(t, m.Update(press(testWidth-1, testListTop))).(Play)
	require.True(t, ok)
	assert.Equal(t, 0, play.Index)

	m.Update(press(0, searchRow))
	assert.Equal(t, ZoneSearch, m.Zone())
}

func TestKeysIgnoredWhenUnfocused(t *testing.T) {
	m := newTestPage(t)
	m.SetFocused(false)
	assert.False(t, m.CapturesInput())
	typeText(m, "abc")
	assert.Empty(t, m.Query())
}

func TestSetData_DropsUnknownSelectedTags(t *testing.T) {
	m := newTestPage(t)
	m.Update(press(15, 3)) // 여름
	seed := catalog.SampleData(time.Now())
	m.SetData(seed.Library, []string{"클래식"})
	assert.Empty(t, m.SelectedTags())
	assert.Empty(t, m.Results())
}

func TestReset(t *testing.T) {
	m := newTestPage(t)
	typeText(m, "spicy")
	m.Update(press(15, 3))
	m.Reset()
	assert.Empty(t, m.Query())
	assert.Empty(t, m.SelectedTags())
	assert.Equal(t, ZoneSearch, m.Zone())
}

func TestView(t *testing.T) {
	m := newTestPage(t)
	lines := strings.Split(testutil.StripANSI(m.View()), "\n")
	require.Len(t, lines, testHeight)
	assert.Contains(t, lines[0], "+ 음악 드랍하기")
	assert.Contains(t, lines[0], "@ 강남구 역삼동")
	assert.True(t, strings.HasPrefix(lines[searchRow], "검색 > "))
	assert.True(t, strings.HasPrefix(lines[3], "[(여자)아이들] [여름] [Spicy]"))
	assert.True(t, strings.HasPrefix(lines[4], "[클래식] [여행]"))
	assert.Contains(t, lines[testListTop], "태그를 골라보세요")
	assert.Contains(t, lines[testHeight-1], "esc 태그")

	m.Update(press(15, 3))
	lines = strings.Split(testutil.StripANSI(m.View()), "\n")
	assert.Contains(t, lines[testListTop-1], "검색 결과 3곡")
	assert.Contains(t, lines[testListTop+2], "Hot Summer - f(x) · Hot Summer")
	assert.True(t, strings.HasSuffix(lines[testListTop+2], "3:50 >"))
}
