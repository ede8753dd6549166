// Package profile renders the signed-in user's page: level, stats, recent
// activity and level progress.
package profile

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Model is the profile page.
type Model struct {
	ui.Base
	user     catalog.User
	activity []catalog.Activity
	offset   int
	now      func() time.Time
}

// New creates the page. now supplies the reference time for activity ages.
func New(now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{now: now}
}

// SetUser replaces the shown user.
func (m *Model) SetUser(u catalog.User) {
	m.user = u
}

// SetActivity replaces the recent activity feed.
func (m *Model) SetActivity(a []catalog.Activity) {
	m.activity = a
	m.clampOffset()
}

// Offset returns the scroll offset in rows.
func (m Model) Offset() int {
	return m.offset
}

// Update scrolls with j/k and the mouse wheel.
func (m *Model) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return
		}
		switch msg.String() {
		case "j", "down":
			m.offset++
		case "k", "up":
			m.offset--
		case "home", "g":
			m.offset = 0
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // other buttons are ignored
		case tea.MouseButtonWheelDown:
			m.offset++
		case tea.MouseButtonWheelUp:
			m.offset--
		}
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	m.offset = min(max(m.offset, 0), max(len(m.lines())-m.Height(), 0))
}

// View renders the visible part of the page.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	lines := m.lines()
	start := min(m.offset, len(lines))
	return strings.Join(render.Lines(lines[start:], m.Width(), m.Height()), "\n")
}

func (m Model) lines() []string {
	s := styles.T().S()
	w := m.Width()
	u := m.user

	lines := []string{
		s.Title.Render("마이페이지"),
		"",
		s.Badge.Render(" " + catalog.LevelBadge(u.Level) + " "),
		s.Title.Render(render.Truncate(icons.FormatUser(u.Username), w)),
		s.Muted.Render(fmt.Sprintf("팔로워 %s · 팔로잉 %s",
			catalog.GroupedCount(u.Followers), catalog.GroupedCount(u.Following))),
		"",
		s.Accent.Render(icons.Music()) + " 드랍 " + s.Title.Render(catalog.GroupedCount(u.DroppedSongs)+"곡") +
			"    " + s.Liked.Render(icons.Like(true)) + " 좋아요 " + s.Title.Render(catalog.GroupedCount(u.PickedSongs)+"곡"),
		"",
		s.Title.Render("최근 활동"),
	}

	if len(m.activity) == 0 {
		lines = append(lines, s.Muted.Render("아직 활동이 없어요"))
	}
	for _, a := range m.activity {
		lines = append(lines, m.activityLines(a)...)
	}

	remaining, ratio := catalog.LevelProgress(u.Level, u.DroppedSongs)
	lines = append(lines,
		"",
		s.Title.Render("레벨 진행도"),
		render.Row(s.Base.Render(catalog.LevelBadge(u.Level)), s.Muted.Render(fmt.Sprintf("다음 레벨까지 %d곡", remaining)), w),
		progressBar(ratio, w),
	)
	return lines
}

func (m Model) activityLines(a catalog.Activity) []string {
	s := styles.T().S()
	w := m.Width()

	glyph := s.Accent.Render(icons.Music())
	if a.Kind == catalog.ActivityPick {
		glyph = s.Liked.Render(icons.Like(true))
	}
	ago := s.Subtle.Render(catalog.Ago(a.At, m.now()))
	avail := w - lipgloss.Width(glyph) - lipgloss.Width(ago) - 2
	title := render.Truncate(a.Title, avail)
	left := glyph + " " + s.Base.Render(title)
	if rest := avail - lipgloss.Width(title) - 1; rest > 0 {
		left += " " + s.Muted.Render(render.Truncate(a.Artist, rest))
	}

	detail := "  " + icons.Marker() + " " + a.Place + "  " + icons.Like(true) + " " + catalog.GroupedCount(a.Likes)
	return []string{
		render.Row(left, ago, w),
		s.Muted.Render(render.Truncate(detail, w)),
	}
}

// progressBar draws a gradient bar filled to ratio.
func progressBar(ratio float64, width int) string {
	t := styles.T()
	if width <= 0 {
		return ""
	}
	filled := min(max(int(float64(width)*ratio+0.5), 0), width)
	var b strings.Builder
	for _, c := range styles.Blend(filled, t.Primary, t.Secondary) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}
	b.WriteString(t.S().Subtle.Render(strings.Repeat("░", width-filled)))
	return b.String()
}
