package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/errmsg"
	"github.com/llehouerou/songdrop/internal/store"
)

const (
	storeTimeout        = 5 * time.Second
	notificationTimeout = 4 * time.Second
	activityLimit       = 10
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// NotificationTimeoutCmd clears the notification with the given version.
func NotificationTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(notificationTimeout, func(time.Time) tea.Msg {
		return NotificationTimeoutMsg{Version: version}
	})
}

func storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

func loadLocationsCmd(s store.Interface) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		locs, err := s.Locations(ctx)
		return LocationsLoadedMsg{Locations: locs, Err: err}
	}
}

func loadProfileCmd(s store.Interface) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		user, err := s.User(ctx)
		if err != nil {
			return ProfileLoadedMsg{Err: err}
		}
		activity, err := s.RecentActivity(ctx, activityLimit)
		if err != nil {
			return ProfileLoadedMsg{Err: fmt.Errorf("recent activity: %w", err)}
		}
		return ProfileLoadedMsg{User: user, Activity: activity}
	}
}

func loadDropDataCmd(s store.Interface) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		library, err := s.Library(ctx)
		if err != nil {
			return DropDataLoadedMsg{Err: err}
		}
		tags, err := s.Tags(ctx)
		if err != nil {
			return DropDataLoadedMsg{Err: fmt.Errorf("tags: %w", err)}
		}
		return DropDataLoadedMsg{Library: library, Tags: tags}
	}
}

func toggleLikeCmd(s store.Interface, songID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		song, err := s.ToggleLike(ctx, songID)
		return SongUpdatedMsg{Song: song, Op: errmsg.OpLikeToggle, Err: err}
	}
}

func recordPlayCmd(s store.Interface, songID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		if err := s.RecordPlay(ctx, songID); err != nil {
			return SongUpdatedMsg{Op: errmsg.OpRecordPlay, Err: err}
		}
		song, err := s.Song(ctx, songID)
		return SongUpdatedMsg{Song: song, Op: errmsg.OpRecordPlay, Err: err}
	}
}

func dropCmd(s store.Interface, song catalog.Song, loc catalog.Location, comment string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := storeContext()
		defer cancel()
		rec, err := s.Drop(ctx, song.ID, loc.ID, comment)
		return DroppedMsg{Song: song, Location: loc, Record: rec, Err: err}
	}
}
