// Package locationmodal lists the songs dropped at a location.
package locationmodal

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/list"
	"github.com/llehouerou/songdrop/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Rows above the song list: title, sort bar, count, separator.
const listTop = 4

// Rows below the song list: separator, dropper line, comment, hint.
const footerRows = 4

var sortLabels = map[catalog.SortMode]string{
	catalog.SortLatest: "최신순",
	catalog.SortLikes:  "좋아요순",
	catalog.SortPlays:  "재생순",
}

// Model is the location popup.
type Model struct {
	ui.Base
	location catalog.Location
	sort     catalog.SortMode
	list     list.Model[catalog.Song]
	keys     *keymap.Resolver
	now      func() time.Time
}

// New creates the modal. now supplies the reference time for relative drop
// times.
func New(now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	l := list.New[catalog.Song](1)
	l.SetFocused(true)
	return Model{
		list: l,
		keys: keymap.ForContexts("modal"),
		now:  now,
	}
}

// SetLocation shows a location, sorted by latest drop.
func (m *Model) SetLocation(loc catalog.Location) {
	m.location = loc
	m.location.Songs = slices.Clone(loc.Songs)
	m.sort = catalog.SortLatest
	m.list.Reset()
	m.refresh()
}

// Location returns the shown location.
func (m Model) Location() catalog.Location {
	return m.location
}

// SortMode returns the active sort mode.
func (m Model) SortMode() catalog.SortMode {
	return m.sort
}

// SetSort changes the sort mode and moves the cursor to the top.
func (m *Model) SetSort(mode catalog.SortMode) {
	m.sort = mode
	m.list.Reset()
	m.refresh()
}

// ReplaceSong updates a song in place, keeping order and cursor.
func (m *Model) ReplaceSong(song catalog.Song) {
	i := slices.IndexFunc(m.location.Songs, func(s catalog.Song) bool { return s.ID == song.ID })
	if i < 0 {
		return
	}
	m.location.Songs[i] = song
	pos := m.list.SelectedIndex()
	m.refresh()
	m.list.Select(pos)
}

// Songs returns the songs in display order.
func (m Model) Songs() []catalog.Song {
	return m.list.Items()
}

// Selected returns the song under the cursor.
func (m Model) Selected() (catalog.Song, bool) {
	return m.list.Selected()
}

func (m *Model) refresh() {
	m.list.SetItems(catalog.SortSongs(m.location.Songs, m.sort))
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, max(m.Height()-listTop-footerRows, 1))
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch m.keys.Resolve(key) { //nolint:exhaustive // unbound actions are ignored
	case keymap.ActionMoveUp:
		m.list.Select(m.list.SelectedIndex() - 1)
	case keymap.ActionMoveDown:
		m.list.Select(m.list.SelectedIndex() + 1)
	case keymap.ActionCycleSort:
		m.SetSort(m.sort.Next())
	case keymap.ActionToggleLike:
		return m.toggleLike(m.list.SelectedIndex())
	case keymap.ActionSelect:
		return m.play(m.list.SelectedIndex())
	case keymap.ActionBack:
		return closeCmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case msg.Y == 0 && msg.X >= m.Width()-closeWidth:
			return closeCmd
		case msg.Y == 1:
			if mode, ok := m.sortAt(msg.X); ok {
				m.SetSort(mode)
			}
			return nil
		}
	}

	local := msg
	local.Y -= listTop
	res := m.list.Update(local)
	if res.Action != list.ActionClick {
		return nil
	}
	switch m.columnAt(msg.X) {
	case columnLike:
		return m.toggleLike(res.Index)
	case columnPlay:
		return m.play(res.Index)
	}
	return nil
}

func (m *Model) toggleLike(index int) tea.Cmd {
	songs := m.list.Items()
	if index < 0 || index >= len(songs) {
		return nil
	}
	id := songs[index].ID
	return func() tea.Msg { return ActionMsg(ToggleLike{SongID: id}) }
}

func (m *Model) play(index int) tea.Cmd {
	songs := m.list.Items()
	if index < 0 || index >= len(songs) {
		return nil
	}
	queue := slices.Clone(songs)
	return func() tea.Msg { return ActionMsg(Play{Queue: queue, Index: index}) }
}

func closeCmd() tea.Msg {
	return ActionMsg(Close{})
}
