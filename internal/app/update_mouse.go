package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/ui/navbar"
	"github.com/llehouerou/songdrop/internal/ui/playerbar"
)

// captureTarget is the component owning a pointer gesture until release.
type captureTarget int

const (
	captureNone captureTarget = iota
	captureMap
	captureStrip
	captureDial
)

// handleMouse translates screen coordinates into the local coordinates of
// the component under the pointer. A left press captures the pointer so a
// drag keeps going to the same component when it leaves its area.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.ActivePopup() != PopupNone {
		cmd := m.handlePopupMouse(msg)
		return m, cmd
	}

	scr := m.screen()
	if m.capture != captureNone && msg.Action != tea.MouseActionPress {
		target := m.capture
		if msg.Action == tea.MouseActionRelease {
			m.capture = captureNone
		}
		local := msg
		local.Y -= scr.Content.Top + m.targetTop(target, scr.Content.Height)
		cmd := m.forward(target, local)
		return m, cmd
	}

	switch {
	case scr.Content.Contains(msg.Y):
		local := msg
		local.Y -= scr.Content.Top
		cmd := m.handleContentMouse(local, scr.Content.Height)
		return m, cmd
	case scr.Player.Contains(msg.Y):
		cmd := m.handlePlayerMouse(msg, msg.Y-scr.Player.Top)
		return m, cmd
	case scr.Nav.Contains(msg.Y):
		m.handleNavMouse(msg, msg.Y-scr.Nav.Top)
	}
	return m, nil
}

func (m *Model) handlePopupMouse(msg tea.MouseMsg) tea.Cmd {
	box, _ := m.Popups.Box()
	if box.Contains(msg.X, msg.Y) || msg.Action != tea.MouseActionPress {
		local := msg
		local.X, local.Y = box.Local(msg.X, msg.Y)
		return m.Popups.Update(local)
	}
	// a click on the backdrop dismisses popups that have nothing pending
	if msg.Button == tea.MouseButtonLeft {
		switch m.Popups.ActivePopup() { //nolint:exhaustive // input and confirm stay open
		case PopupLocation:
			m.Popups.HideLocation()
		case PopupHelp:
			m.Popups.HideHelp()
		}
	}
	return nil
}

// targetTop is the first content row of a map page component.
// releaseCapture ends the gesture of the component holding the pointer, for
// when it is hidden before the button comes up.
func (m *Model) releaseCapture() {
	switch m.capture {
	case captureStrip:
		m.carousel.CancelDrag()
	case captureMap:
		m.mapView.CancelDrag()
	case captureNone, captureDial:
	}
	m.capture = captureNone
}

func (m Model) targetTop(target captureTarget, contentHeight int) int {
	if target == captureStrip {
		mapHeight, _ := m.mapSplit(contentHeight)
		return mapHeight
	}
	return 0
}

func (m *Model) handleContentMouse(msg tea.MouseMsg, contentHeight int) tea.Cmd {
	switch m.page {
	case navbar.PageDrop:
		return m.dropPage.Update(msg)
	case navbar.PageProfile:
		m.profile.Update(msg)
		return nil
	case navbar.PageMap:
	}

	target := captureDial
	if !m.showDial {
		mapHeight, _ := m.mapSplit(contentHeight)
		target = captureMap
		if msg.Y >= mapHeight {
			target = captureStrip
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.capture = target
		switch target {
		case captureMap:
			m.focus = FocusMap
		case captureStrip:
			m.focus = FocusStrip
		case captureNone, captureDial:
		}
		m.applyFocus()
	}

	msg.Y -= m.targetTop(target, contentHeight)
	return m.forward(target, msg)
}

// forward sends a mouse event in local coordinates to a map page component.
func (m *Model) forward(target captureTarget, msg tea.MouseMsg) tea.Cmd {
	switch target {
	case captureMap:
		res, cmd := m.mapView.Update(msg)
		return tea.Batch(cmd, m.handleMapResult(res))
	case captureStrip:
		res, cmd := m.carousel.Update(msg)
		return tea.Batch(cmd, m.handleCarouselResult(res))
	case captureDial:
		return m.handleDialResult(m.dial.Update(msg))
	case captureNone:
	}
	return nil
}

func (m *Model) handlePlayerMouse(msg tea.MouseMsg, row int) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	hit := playerbar.HitTest(m.playerState(), m.width, msg.X, row)
	switch hit.Control {
	case playerbar.ControlPrev:
		return m.skip(m.Player.Previous())
	case playerbar.ControlNext:
		return m.skip(m.Player.Next())
	case playerbar.ControlPlayPause:
		m.Player.Toggle()
	case playerbar.ControlLike:
		song, _ := m.Player.Song()
		return toggleLikeCmd(m.Store, song.ID)
	case playerbar.ControlSeek:
		target := time.Duration(hit.Ratio * float64(m.Player.Duration()))
		m.Player.Seek(target - m.Player.Position())
	case playerbar.ControlNone:
	}
	return nil
}

func (m *Model) handleNavMouse(msg tea.MouseMsg, row int) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || row != navbar.Height-1 {
		return
	}
	if p, ok := navbar.PageAt(m.width, msg.X); ok {
		m.setPage(p)
	}
}
