package player

import (
	"time"

	"github.com/llehouerou/songdrop/internal/catalog"
)

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(songs []catalog.Song, index int) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Song() (catalog.Song, bool)
	Queue() []catalog.Song
	QueueIndex() int
	Position() time.Duration
	Duration() time.Duration
	Seek(delta time.Duration)
	Next() bool
	Previous() bool
	Advance(dt time.Duration) bool
	UpdateSong(song catalog.Song)
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
