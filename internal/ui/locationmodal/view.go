package locationmodal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

const (
	closeLabel = "[x]"
	closeWidth = 3
	sortGap    = 2
	rankWidth  = 3
	likeColumn = rankWidth
	bodyColumn = likeColumn + 2
)

type column int

const (
	columnBody column = iota
	columnLike
	columnPlay
)

// columnAt classifies a content column of a song row.
func (m Model) columnAt(x int) column {
	switch {
	case x == likeColumn:
		return columnLike
	case x >= m.Width()-2:
		return columnPlay
	}
	return columnBody
}

// sortAt returns the sort mode whose label covers column x of the sort bar.
func (m Model) sortAt(x int) (catalog.SortMode, bool) {
	start := 0
	for _, mode := range catalog.SortModes {
		w := runewidth.StringWidth(sortLabels[mode])
		if x >= start && x < start+w {
			return mode, true
		}
		start += w + sortGap
	}
	return catalog.SortLatest, false
}

// View implements popup.Popup.
func (m *Model) View() string {
	w := m.Width()
	if w <= 0 || m.Height() <= 0 {
		return ""
	}
	s := styles.T().S()

	title := s.Title.Render(render.Truncate(icons.Marker()+" "+m.location.Address, w-closeWidth-1))
	lines := []string{
		render.Row(title, s.Muted.Render(closeLabel), w),
		m.sortBar(),
		s.Muted.Render(fmt.Sprintf("%d개의 노래가 드랍되어 있습니다", len(m.location.Songs))),
		s.Subtle.Render(render.Separator(w)),
	}
	lines = append(lines, m.songRows()...)
	lines = append(lines, s.Subtle.Render(render.Separator(w)))
	lines = append(lines, m.details()...)
	lines = append(lines, s.Subtle.Render(render.Truncate("s 정렬 · l 좋아요 · enter 재생 · esc 닫기", w)))

	return strings.Join(render.Lines(lines, w, m.Height()), "\n")
}

func (m Model) sortBar() string {
	s := styles.T().S()
	parts := make([]string, 0, len(catalog.SortModes))
	for _, mode := range catalog.SortModes {
		label := sortLabels[mode]
		if mode == m.sort {
			parts = append(parts, s.Active.Render(label))
		} else {
			parts = append(parts, s.Muted.Render(label))
		}
	}
	return strings.Join(parts, strings.Repeat(" ", sortGap))
}

func (m Model) songRows() []string {
	height := m.list.Height()
	songs := m.list.Items()
	if len(songs) == 0 {
		return render.Lines([]string{styles.T().S().Muted.Render("드랍된 노래가 없어요")}, m.Width(), height)
	}
	start, end := m.list.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.songRow(i, songs[i], i == m.list.SelectedIndex()))
	}
	return render.Lines(rows, m.Width(), height)
}

func (m Model) songRow(index int, song catalog.Song, selected bool) string {
	t := styles.T()
	s := t.S()
	w := m.Width()

	rankStyle := s.Subtle
	if m.sort.Ranked() && index < 3 {
		rankStyle = lipgloss.NewStyle().Foreground(t.Rank(index + 1)).Bold(true)
	}
	rank := rankStyle.Render(render.Pad(strconv.Itoa(index+1)+".", rankWidth))

	heart := s.Muted.Render(icons.Like(false))
	if song.Liked {
		heart = s.Liked.Render(icons.Like(true))
	}

	plays := catalog.GroupedCount(song.Plays) + "회"
	right := s.Muted.Render(plays) + " " + s.Accent.Render(icons.PlayPause(false))

	bodyWidth := w - bodyColumn - lipgloss.Width(right) - 1
	body := render.TruncateAndPad(song.Title+" - "+song.Artist, bodyWidth)
	if selected {
		body = s.Cursor.Render(body)
	} else {
		body = s.Base.Render(body)
	}

	return rank + heart + " " + body + " " + right
}

func (m Model) details() []string {
	s := styles.T().S()
	w := m.Width()
	song, ok := m.list.Selected()
	if !ok {
		return []string{"", ""}
	}
	by := "@" + song.DroppedBy
	if ago := catalog.Ago(song.DroppedAt, m.now()); ago != "" {
		by += " · " + ago
	}
	return []string{
		s.Accent.Render(render.Truncate(by, w)),
		s.Muted.Render(render.Truncate(icons.FormatComment(song.Comment), w)),
	}
}
