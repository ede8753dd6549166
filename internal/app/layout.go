package app

import (
	"github.com/llehouerou/songdrop/internal/ui"
	"github.com/llehouerou/songdrop/internal/ui/layout"
	"github.com/llehouerou/songdrop/internal/ui/playerbar"
)

// screen splits the window into header, page, player, notification and
// navigation bands.
func (m Model) screen() layout.Screen {
	opts := layout.ContentOpts{
		HeaderHeight: ui.HeaderHeight,
		NavBarHeight: ui.NavBarHeight,
	}
	if m.playerState().Active() {
		opts.PlayerBarHeight = ui.PlayerBarHeight
	}
	if m.notice.text != "" {
		opts.NotificationHeight = ui.NotificationHeight
	}
	return layout.Split(m.height, opts)
}

// mapSplit returns the heights of the map canvas and the carousel below it.
func (m Model) mapSplit(contentHeight int) (mapHeight, stripHeight int) {
	return layout.MapSplit(contentHeight, ui.CarouselHeight, ui.MinMapHeight)
}

func (m Model) playerState() playerbar.State {
	return playerbar.NewState(m.Player)
}

// relayout sizes every page component to the current bands. Components whose
// size did not change are left alone so running animations continue.
func (m *Model) relayout() {
	content := m.screen().Content.Height
	mapHeight, stripHeight := m.mapSplit(content)

	resize(&m.mapView, m.width, mapHeight)
	resize(&m.carousel, m.width, stripHeight)
	resize(&m.dial, m.width, content)
	resize(&m.dropPage, m.width, content)
	resize(&m.profile, m.width, content)
}

type sizer interface {
	Size() (width, height int)
	SetSize(width, height int)
}

func resize(c sizer, width, height int) {
	if w, h := c.Size(); w == width && h == height {
		return
	}
	c.SetSize(width, height)
}
