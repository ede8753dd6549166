// Package droppage implements the page used to find a song and drop it at
// the nearby location: a search input, tag toggles and a results list.
package droppage

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/list"
)

// Zone is the part of the page receiving keys.
type Zone int

const (
	ZoneSearch Zone = iota
	ZoneTags
	ZoneResults
)

const zoneCount = 3

// Model is the drop page.
type Model struct {
	ui.Base
	zone      Zone
	input     textinput.Model
	library   []catalog.Song
	tags      []string
	selected  map[string]bool
	tagCursor int
	results   list.Model[catalog.Song]
	target    string
	tagKeys   *keymap.Resolver
	listKeys  *keymap.Resolver
}

// New creates an empty drop page focused on the search input.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "노래, 아티스트, 앨범 검색"
	ti.CharLimit = 50

	return Model{
		input:    ti,
		selected: make(map[string]bool),
		results:  list.New[catalog.Song](1),
		tagKeys:  keymap.ForContexts("drop", "drop-tags"),
		listKeys: keymap.ForContexts("drop", "drop-results"),
	}
}

// SetData replaces the searchable library and the tag list. Selected tags
// that no longer exist are dropped.
func (m *Model) SetData(library []catalog.Song, tags []string) {
	m.library = library
	m.tags = tags
	for t := range m.selected {
		if !slices.Contains(tags, t) {
			delete(m.selected, t)
		}
	}
	m.tagCursor = min(m.tagCursor, max(len(tags)-1, 0))
	m.layoutList()
	m.refresh()
}

// SetTarget sets the place name shown as the drop destination.
func (m *Model) SetTarget(place string) {
	m.target = place
}

// SetSize sets the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(searchLabel)-3, 1)
	m.layoutList()
}

// SetFocused sets focus and moves the text cursor with it.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.syncInputFocus()
}

// Zone returns the focused zone.
func (m Model) Zone() Zone {
	return m.zone
}

// SetZone moves key focus to a zone.
func (m *Model) SetZone(z Zone) {
	m.zone = z
	m.results.SetFocused(z == ZoneResults)
	m.syncInputFocus()
}

// CapturesInput reports whether printable keys belong to the search input,
// so global single-letter bindings must not fire.
func (m Model) CapturesInput() bool {
	return m.IsFocused() && m.zone == ZoneSearch
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

// SelectedTags returns the toggled tags in tag list order.
func (m Model) SelectedTags() []string {
	var out []string
	for _, t := range m.tags {
		if m.selected[t] {
			out = append(out, t)
		}
	}
	return out
}

// Results returns the current search results.
func (m Model) Results() []catalog.Song {
	return m.results.Items()
}

// Selected returns the highlighted result.
func (m Model) Selected() (catalog.Song, bool) {
	return m.results.Selected()
}

// ToggleTag flips a tag and reruns the search.
func (m *Model) ToggleTag(index int) {
	if index < 0 || index >= len(m.tags) {
		return
	}
	t := m.tags[index]
	if m.selected[t] {
		delete(m.selected, t)
	} else {
		m.selected[t] = true
	}
	m.tagCursor = index
	m.refresh()
}

// Reset clears the query and tags and focuses the search input.
func (m *Model) Reset() {
	m.input.Reset()
	clear(m.selected)
	m.tagCursor = 0
	m.results.Reset()
	m.refresh()
	m.SetZone(ZoneSearch)
}

func (m *Model) refresh() {
	m.results.SetItems(catalog.Search(m.library, m.input.Value(), m.SelectedTags()))
}

func (m *Model) syncInputFocus() {
	if m.IsFocused() && m.zone == ZoneSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) layoutList() {
	top := m.listTop()
	m.results.SetSize(m.Width(), max(m.Height()-top-1, 1))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles input. Mouse coordinates are relative to the page.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	if m.zone == ZoneSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.SetZone((m.zone + 1) % zoneCount)
		return nil
	case "shift+tab":
		m.SetZone((m.zone + zoneCount - 1) % zoneCount)
		return nil
	}

	switch m.zone {
	case ZoneSearch:
		return m.handleSearchKey(msg)
	case ZoneTags:
		m.handleTagKey(msg.String())
	case ZoneResults:
		return m.handleResultKey(msg.String())
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.SetZone(ZoneTags)
		return nil
	case "enter", "down":
		if m.results.Len() > 0 {
			m.SetZone(ZoneResults)
		} else {
			m.SetZone(ZoneTags)
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.results.Reset()
		m.refresh()
	}
	return cmd
}

func (m *Model) handleTagKey(key string) {
	if key == "/" {
		m.SetZone(ZoneSearch)
		return
	}
	switch key {
	case "k", "up":
		m.SetZone(ZoneSearch)
		return
	case "j", "down":
		if m.results.Len() > 0 {
			m.SetZone(ZoneResults)
		}
		return
	}

	switch m.tagKeys.Resolve(key) { //nolint:exhaustive // unbound actions are ignored
	case keymap.ActionPrevItem:
		m.tagCursor = max(m.tagCursor-1, 0)
	case keymap.ActionNextItem:
		m.tagCursor = min(m.tagCursor+1, max(len(m.tags)-1, 0))
	case keymap.ActionToggleTag:
		m.ToggleTag(m.tagCursor)
	case keymap.ActionBack:
		m.SetZone(ZoneSearch)
	}
}

func (m *Model) handleResultKey(key string) tea.Cmd {
	if key == "/" {
		m.SetZone(ZoneSearch)
		return nil
	}
	switch m.listKeys.Resolve(key) { //nolint:exhaustive // unbound actions are ignored
	case keymap.ActionMoveUp:
		if m.results.SelectedIndex() == 0 {
			m.SetZone(ZoneTags)
			return nil
		}
		m.results.Select(m.results.SelectedIndex() - 1)
	case keymap.ActionMoveDown:
		m.results.Select(m.results.SelectedIndex() + 1)
	case keymap.ActionSelect:
		return m.play(m.results.SelectedIndex())
	case keymap.ActionDrop:
		return m.drop()
	case keymap.ActionBack:
		m.SetZone(ZoneSearch)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	top := m.listTop()
	if msg.Y >= top {
		local := msg
		local.Y -= top
		res := m.results.Update(local)
		if res.Action != list.ActionClick {
			return nil
		}
		m.SetZone(ZoneResults)
		if msg.X >= m.Width()-2 {
			return m.play(res.Index)
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y == searchRow {
		m.SetZone(ZoneSearch)
		return nil
	}
	if i, ok := m.tagAt(msg.X, msg.Y); ok {
		m.SetZone(ZoneTags)
		m.ToggleTag(i)
	}
	return nil
}

func (m *Model) play(index int) tea.Cmd {
	songs := m.results.Items()
	if index < 0 || index >= len(songs) {
		return nil
	}
	queue := slices.Clone(songs)
	return func() tea.Msg { return ActionMsg(Play{Queue: queue, Index: index}) }
}

func (m *Model) drop() tea.Cmd {
	song, ok := m.results.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg { return ActionMsg(Drop{Song: song}) }
}
