package droppage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

const (
	searchLabel = "검색 "
	searchRow   = 1
	tagTop      = 3
	tagGap      = 1
)

type tagCell struct {
	x, y, width int
}

// tagCells lays tags out left to right, wrapping at the page width. Each
// tag is drawn as "[name]".
func (m Model) tagCells() []tagCell {
	cells := make([]tagCell, len(m.tags))
	x, y := 0, tagTop
	for i, t := range m.tags {
		w := lipgloss.Width(t) + 2
		if x > 0 && x+w > m.Width() {
			x = 0
			y++
		}
		cells[i] = tagCell{x: x, y: y, width: w}
		x += w + tagGap
	}
	return cells
}

func (m Model) tagRows() int {
	cells := m.tagCells()
	if len(cells) == 0 {
		return 1
	}
	return cells[len(cells)-1].y - tagTop + 1
}

// listTop is the first row of the results list. A blank row and the result
// count sit between the tags and the list.
func (m Model) listTop() int {
	return tagTop + m.tagRows() + 2
}

func (m Model) tagAt(x, y int) (int, bool) {
	for i, c := range m.tagCells() {
		if y == c.y && x >= c.x && x < c.x+c.width {
			return i, true
		}
	}
	return 0, false
}

// View renders the page.
func (m Model) View() string {
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return ""
	}
	s := styles.T().S()

	title := s.Title.Render(icons.FormatDrop("음악 드랍하기"))
	target := ""
	if m.target != "" {
		target = s.Muted.Render(render.Truncate(icons.Marker()+" "+m.target, w/2))
	}

	lines := make([]string, 0, h)
	lines = append(lines, render.Row(title, target, w))
	lines = append(lines, s.Muted.Render(searchLabel)+m.input.View())
	lines = append(lines, "")
	lines = append(lines, m.tagLines()...)
	lines = append(lines, "")
	lines = append(lines, m.resultHeader())
	lines = append(lines, m.resultRows()...)
	lines = append(lines, s.Subtle.Render(render.Truncate(m.hint(), w)))

	return strings.Join(render.Lines(lines, w, h), "\n")
}

func (m Model) tagLines() []string {
	t := styles.T()
	s := t.S()
	rows := make([]strings.Builder, m.tagRows())
	cells := m.tagCells()
	for i, tag := range m.tags {
		c := cells[i]
		row := &rows[c.y-tagTop]
		if row.Len() > 0 {
			row.WriteString(strings.Repeat(" ", tagGap))
		}
		label := "[" + tag + "]"
		st := s.Muted
		if m.selected[tag] {
			st = s.Badge
		}
		if m.IsFocused() && m.zone == ZoneTags && i == m.tagCursor {
			st = st.Underline(true).Bold(true)
		}
		row.WriteString(st.Render(label))
	}
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

func (m Model) resultHeader() string {
	s := styles.T().S()
	if m.input.Value() == "" && len(m.SelectedTags()) == 0 {
		return ""
	}
	return s.Accent.Render(fmt.Sprintf("검색 결과 %d곡", m.results.Len()))
}

func (m Model) resultRows() []string {
	s := styles.T().S()
	height := m.results.Height()
	if m.results.Len() == 0 {
		msg := "검색 결과가 없어요"
		if m.input.Value() == "" && len(m.SelectedTags()) == 0 {
			msg = "제목, 아티스트, 앨범으로 검색하거나 태그를 골라보세요"
		}
		return render.Lines([]string{s.Muted.Render(render.Truncate(msg, m.Width()))}, m.Width(), height)
	}

	focused := m.IsFocused() && m.zone == ZoneResults
	return strings.Split(m.results.View(func(song catalog.Song, selected bool, width int) string {
		return resultRow(song, selected && focused, width)
	}), "\n")
}

func resultRow(song catalog.Song, selected bool, width int) string {
	s := styles.T().S()
	right := s.Muted.Render(catalog.FormatDuration(song.Duration)) + " " + s.Accent.Render(icons.PlayPause(false))
	body := render.TruncateAndPad(song.Title+" - "+song.Artist+" · "+song.Album, width-lipgloss.Width(right)-1)
	if selected {
		body = s.Cursor.Render(body)
	} else {
		body = s.Base.Render(body)
	}
	return body + " " + right
}

func (m Model) hint() string {
	switch m.zone {
	case ZoneTags:
		return "←/→ 이동 · enter 선택 · ↓ 결과 · tab 다음"
	case ZoneResults:
		return "enter 재생 · D 여기에 드랍 · / 검색 · tab 다음"
	default:
		return "enter 결과로 · esc 태그 · tab 다음"
	}
}
