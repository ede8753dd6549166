package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/app/handler"
	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/ui/carousel"
	"github.com/llehouerou/songdrop/internal/ui/dial"
	"github.com/llehouerou/songdrop/internal/ui/mapview"
	"github.com/llehouerou/songdrop/internal/ui/navbar"
)

// commandKeys still reach the global bindings while the search input has
// the keyboard.
var commandKeys = map[string]bool{
	"ctrl+c": true,
	"f1":     true,
	"f2":     true,
	"f3":     true,
}

// handleKey routes a key to the active popup, then the global and player
// bindings, then the page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Popups.ActivePopup() != PopupNone {
		cmd := m.Popups.Update(msg)
		return m, cmd
	}

	key := msg.String()
	if m.page == navbar.PageDrop && m.dropPage.CapturesInput() && !commandKeys[key] {
		cmd := m.dropPage.Update(msg)
		return m, cmd
	}

	if r := handler.Chain(key, m.handleGlobalKeys, m.handlePlayerKeys); r.Handled {
		return m, r.Cmd
	}
	cmd := m.handlePageKey(msg)
	return m, cmd
}

func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.keys.Resolve(key) { //nolint:exhaustive // other actions belong to the player handler
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.Popups.ShowHelp(m.helpContexts())
	case keymap.ActionViewMap:
		m.setPage(navbar.PageMap)
	case keymap.ActionViewDrop:
		m.setPage(navbar.PageDrop)
	case keymap.ActionViewProfile:
		m.setPage(navbar.PageProfile)
	case keymap.ActionSwitchFocus:
		// the drop page uses tab to move between its zones
		if m.page != navbar.PageMap || m.showDial {
			return handler.NotHandled
		}
		m.toggleFocus()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handlePlayerKeys(key string) handler.Result {
	if !m.playerState().Active() {
		return handler.NotHandled
	}
	switch m.keys.Resolve(key) { //nolint:exhaustive // only player actions
	case keymap.ActionPlayPause:
		m.Player.Toggle()
	case keymap.ActionNextSong:
		return handler.Handled(m.skip(m.Player.Next()))
	case keymap.ActionPrevSong:
		return handler.Handled(m.skip(m.Player.Previous()))
	case keymap.ActionLikePlayed:
		song, _ := m.Player.Song()
		return handler.Handled(toggleLikeCmd(m.Store, song.ID))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// skip records the play of the new song after a next/previous that moved.
func (m *Model) skip(moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	song, ok := m.Player.Song()
	if !ok {
		return nil
	}
	return recordPlayCmd(m.Store, song.ID)
}

func (m *Model) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	switch m.page {
	case navbar.PageMap:
		return m.handleMapPageKey(msg)
	case navbar.PageDrop:
		return m.dropPage.Update(msg)
	case navbar.PageProfile:
		m.profile.Update(msg)
	}
	return nil
}

func (m *Model) handleMapPageKey(msg tea.KeyMsg) tea.Cmd {
	if m.dialKeys.Resolve(msg.String()) == keymap.ActionToggleDial {
		m.toggleDial()
		return nil
	}
	if m.showDial {
		return m.handleDialResult(m.dial.Update(msg))
	}
	if m.focus == FocusMap {
		res, cmd := m.mapView.Update(msg)
		return tea.Batch(cmd, m.handleMapResult(res))
	}
	res, cmd := m.carousel.Update(msg)
	return tea.Batch(cmd, m.handleCarouselResult(res))
}

func (m *Model) handleMapResult(res mapview.Result) tea.Cmd {
	if res.Action == mapview.ActionOpen {
		m.Popups.ShowLocation(res.Location)
	}
	return nil
}

func (m *Model) handleCarouselResult(res carousel.Result[catalog.Song]) tea.Cmd {
	if res.Action != carousel.ActionActivate {
		return nil
	}
	return m.play(m.carousel.Items(), res.Index)
}

func (m *Model) handleDialResult(res dial.Result) tea.Cmd {
	switch res.Action {
	case dial.ActionSelect:
		return m.play(m.dial.Songs(), res.Index)
	case dial.ActionClose:
		m.toggleDial()
	case dial.ActionNone, dial.ActionMoved:
	}
	return nil
}
