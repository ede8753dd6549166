// Package app contains the root model of the TUI and the messages it routes.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/errmsg"
	"github.com/llehouerou/songdrop/internal/store"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages cannot implement these and are matched
// individually.

// PlaybackMessage is implemented by messages that drive the player clock.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by results of store queries.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// TickMsg is sent every second to advance playback.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// LocationsLoadedMsg carries the map locations and their songs.
type LocationsLoadedMsg struct {
	Locations []catalog.Location
	Err       error
}

func (LocationsLoadedMsg) loadingMessage() {}

// ProfileLoadedMsg carries the current user and their recent activity.
type ProfileLoadedMsg struct {
	User     catalog.User
	Activity []catalog.Activity
	Err      error
}

func (ProfileLoadedMsg) loadingMessage() {}

// DropDataLoadedMsg carries the searchable library and tag list.
type DropDataLoadedMsg struct {
	Library []catalog.Song
	Tags    []string
	Err     error
}

func (DropDataLoadedMsg) loadingMessage() {}

// SongUpdatedMsg carries a song re-read after a like or a play was recorded.
type SongUpdatedMsg struct {
	Song catalog.Song
	Op   errmsg.Op
	Err  error
}

func (SongUpdatedMsg) loadingMessage() {}

// DroppedMsg reports the outcome of a drop.
type DroppedMsg struct {
	Song     catalog.Song
	Location catalog.Location
	Record   store.DropRecord
	Err      error
}

func (DroppedMsg) loadingMessage() {}

// NotificationTimeoutMsg clears the status line. Version guards against
// clearing a newer notification.
type NotificationTimeoutMsg struct {
	Version int
}
