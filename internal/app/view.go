package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songdrop/internal/ui/headerbar"
	"github.com/llehouerou/songdrop/internal/ui/layout"
	"github.com/llehouerou/songdrop/internal/ui/navbar"
	"github.com/llehouerou/songdrop/internal/ui/playerbar"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	scr := m.screen()

	var lines []string
	add := func(block string, band layout.Band) {
		lines = append(lines, fitBlock(block, m.width, band.Height)...)
	}
	add(headerbar.Render(m.user, m.width), scr.Header)
	add(m.renderPage(scr.Content.Height), scr.Content)
	add(playerbar.Render(m.playerState(), m.width), scr.Player)
	add(m.renderNotice(), scr.Notification)
	add(navbar.Render(m.page, m.width), scr.Nav)

	return m.Popups.Render(strings.Join(lines, "\n"))
}

func (m Model) renderPage(height int) string {
	if height <= 0 {
		return ""
	}
	switch m.page {
	case navbar.PageDrop:
		return m.dropPage.View()
	case navbar.PageProfile:
		return m.profile.View()
	case navbar.PageMap:
	}

	if m.showDial {
		return m.dial.View()
	}
	mapHeight, stripHeight := m.mapSplit(height)
	parts := fitBlock(m.mapView.View(), m.width, mapHeight)
	if stripHeight > 0 {
		parts = append(parts, fitBlock(m.carousel.View(songCard), m.width, stripHeight)...)
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderNotice() string {
	if m.notice.text == "" {
		return ""
	}
	s := styles.T().S()
	text := render.Truncate(" "+m.notice.text, m.width)
	if m.notice.isError {
		return s.Error.Render(text)
	}
	return s.Success.Render(text)
}

// fitBlock cuts or pads a rendered block to exactly height lines no wider
// than width.
func fitBlock(block string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	var src []string
	if block != "" {
		src = strings.Split(block, "\n")
	}
	src = src[:min(len(src), height)]
	for i, line := range src {
		src[i] = ansi.Truncate(line, width, "")
	}
	return render.Lines(src, width, height)
}
