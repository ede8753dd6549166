package app

import (
	"fmt"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/errmsg"
)

// handleLoadingMsg applies the results of store queries.
func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LocationsLoadedMsg:
		if msg.Err != nil {
			cmd := m.notify(errmsg.Format(errmsg.OpLoadLocations, msg.Err), true)
			return m, cmd
		}
		m.setLocations(msg.Locations)
		return m, nil

	case ProfileLoadedMsg:
		if msg.Err != nil {
			cmd := m.notify(errmsg.Format(errmsg.OpLoadProfile, msg.Err), true)
			return m, cmd
		}
		m.user = msg.User
		m.profile.SetUser(msg.User)
		m.profile.SetActivity(msg.Activity)
		return m, nil

	case DropDataLoadedMsg:
		if msg.Err != nil {
			cmd := m.notify(errmsg.Format(errmsg.OpLoadLibrary, msg.Err), true)
			return m, cmd
		}
		m.dropPage.SetData(msg.Library, msg.Tags)
		return m, nil

	case SongUpdatedMsg:
		if msg.Err != nil {
			cmd := m.notify(errmsg.FormatWith(msg.Op, msg.Song.Title, msg.Err), true)
			return m, cmd
		}
		m.applySong(msg.Song)
		return m, nil

	case DroppedMsg:
		return m.handleDropped(msg)
	}
	return m, nil
}

// setLocations installs freshly loaded locations and picks the nearby one.
func (m *Model) setLocations(locs []catalog.Location) {
	m.locations = locs
	m.nearby, m.hasNearby = catalog.Nearest(locs, m.position)

	m.mapView.SetLocations(locs, m.nearby.ID)
	m.carousel.SetItems(m.nearby.Songs)
	m.dial.SetSongs(m.nearby.Songs)
	m.dropPage.SetTarget(m.nearby.Address)

	if m.Popups.LocationVisible() {
		shown := m.Popups.Location().Location()
		if loc, ok := catalog.FindLocation(locs, shown.ID); ok {
			mode := m.Popups.Location().SortMode()
			m.Popups.Location().SetLocation(loc)
			m.Popups.Location().SetSort(mode)
		}
	}
	slog.Debug("locations loaded", "count", len(locs), "nearby", m.nearby.ID)
}

// applySong replaces every copy of a song that changed in the store.
func (m *Model) applySong(song catalog.Song) {
	m.locations = slices.Clone(m.locations)
	for i := range m.locations {
		m.locations[i].Songs = replaceSong(m.locations[i].Songs, song)
	}
	if m.hasNearby {
		m.nearby.Songs = replaceSong(m.nearby.Songs, song)
	}
	if slices.ContainsFunc(m.carousel.Items(), func(s catalog.Song) bool { return s.ID == song.ID }) {
		m.carousel.SetItems(replaceSong(m.carousel.Items(), song))
	}
	m.dial.SetSongs(replaceSong(m.dial.Songs(), song))
	m.Popups.Location().ReplaceSong(song)
	m.Player.UpdateSong(song)
}

// replaceSong returns a copy of songs with entries matching song.ID replaced.
func replaceSong(songs []catalog.Song, song catalog.Song) []catalog.Song {
	out := slices.Clone(songs)
	for i := range out {
		if out[i].ID == song.ID {
			out[i] = song
		}
	}
	return out
}

func (m Model) handleDropped(msg DroppedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		cmd := m.notify(errmsg.FormatWith(errmsg.OpDrop, msg.Song.Title, msg.Err), true)
		return m, cmd
	}
	slog.Info("song dropped", "song", msg.Song.ID, "location", msg.Location.ID, "drop", msg.Record.ID)
	text := fmt.Sprintf("%s 드랍 완료 · %s", msg.Song.Title, msg.Location.Address)
	cmd := m.notify(text, false)
	return m, tea.Batch(cmd, loadLocationsCmd(m.Store), loadProfileCmd(m.Store))
}
