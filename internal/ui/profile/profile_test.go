package profile

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

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestProfile(height int) *Model {
	seed := catalog.SampleData(testNow)
	m := New(func() time.Time { return testNow })
	m.SetSize(60, height)
	m.SetUser(seed.User)
	m.SetActivity(seed.Activity)
	m.SetFocused(true)
	return &m
}

func viewLines(m *Model) []string {
	return strings.Split(testutil.StripANSI(m.View()), "\n")
}

func TestView(t *testing.T) {
	m := newTestProfile(30)
	lines := viewLines(m)
	require.Len(t, lines, 30)

	assert.Equal(t, "마이페이지", lines[0])
	assert.Equal(t, " L.3 스페셜 DJ ", lines[2])
	assert.Equal(t, "친절한 부엉이", lines[3])
	assert.Equal(t, "팔로워 248 · 팔로잉 156", lines[4])
	assert.Equal(t, "# 드랍 12곡    * 좋아요 89곡", lines[6])
	assert.Equal(t, "최근 활동", lines[8])

	assert.True(t, strings.HasPrefix(lines[9], "# 좋아의 꿈 AKMU(악동뮤지션)"))
	assert.True(t, strings.HasSuffix(lines[9], "1 hour ago"))
	assert.Equal(t, "  @ 구로구 구로동  * 32", lines[10])
	assert.True(t, strings.HasPrefix(lines[13], "* 한국어 MIND"), "picks use the heart glyph")

	assert.Equal(t, "레벨 진행도", lines[16])
	assert.True(t, strings.HasSuffix(lines[17], "다음 레벨까지 2곡"))
	assert.Equal(t, strings.Repeat("█", 45)+strings.Repeat("░", 15), lines[18])
}

func TestView_NoActivity(t *testing.T) {
	m := newTestProfile(30)
	m.SetActivity(nil)
	assert.Contains(t, testutil.StripANSI(m.View()), "아직 활동이 없어요")
}

func TestScroll(t *testing.T) {
	m := newTestProfile(10)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.Offset())
	assert.Equal(t, "최근 활동", viewLines(m)[7])

	for range 50 {
		m.Update(testutil.Mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 0, 0))
	}
	// 19 content rows in a 10 row viewport
	assert.Equal(t, 9, m.Offset())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Zero(t, m.Offset())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Zero(t, m.Offset())
}

func TestScroll_KeysIgnoredWhenUnfocused(t *testing.T) {
	m := newTestProfile(10)
	m.SetFocused(false)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Zero(t, m.Offset())
}
