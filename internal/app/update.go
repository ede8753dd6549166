package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/ui/action"
	"github.com/llehouerou/songdrop/internal/ui/carousel"
	"github.com/llehouerou/songdrop/internal/ui/mapview"
	"github.com/llehouerou/songdrop/internal/ui/navbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case action.Msg:
		return m.handleAction(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case LoadingMessage:
		return m.handleLoadingMsg(msg)

	case NotificationTimeoutMsg:
		if msg.Version == m.notice.version && m.notice.text != "" {
			m.notice = notice{version: m.notice.version}
			m.relayout()
		}
		return m, nil

	case carousel.FrameMsg:
		_, cmd := m.carousel.Update(msg)
		return m, cmd

	case mapview.FrameMsg:
		_, cmd := m.mapView.Update(msg)
		return m, cmd
	}

	// Anything else (cursor blink) belongs to the drop page input.
	if m.page == navbar.PageDrop {
		cmd := m.dropPage.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	m.relayout()
	return m, nil
}

// handlePlaybackMsg advances the player clock.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if !m.Player.Advance(time.Second) {
		return m, TickCmd()
	}
	m.relayout()
	song, ok := m.Player.Song()
	if !ok {
		slog.Debug("playback finished")
		return m, TickCmd()
	}
	slog.Debug("advanced to next song", "song", song.ID)
	return m, tea.Batch(TickCmd(), recordPlayCmd(m.Store, song.ID))
}

// notify shows a message on the status line for a few seconds.
func (m *Model) notify(text string, isError bool) tea.Cmd {
	m.notice = notice{text: text, isError: isError, version: m.notice.version + 1}
	if isError {
		slog.Warn("notification", "error", text)
	}
	m.relayout()
	return NotificationTimeoutCmd(m.notice.version)
}
