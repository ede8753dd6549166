// Package player keeps the playback clock for the selected song. Nothing is
// decoded or sent to an audio device: the position only advances when the
// caller reports elapsed time.
package player

import (
	"errors"
	"time"

	"github.com/llehouerou/songdrop/internal/catalog"
)

// ErrNoSong is returned when asked to play outside the given list.
var ErrNoSong = errors.New("no song at that position")

// restartThreshold is how far into a song Previous restarts it instead of
// stepping back.
const restartThreshold = 3 * time.Second

// Player is a playback clock over a queue of songs.
type Player struct {
	state    State
	queue    *Queue
	position time.Duration
}

// New creates a stopped player.
func New() *Player {
	return &Player{
		state: Stopped,
		queue: NewQueue(),
	}
}

// Play starts the song at index of songs from the beginning. songs becomes
// the queue used by Next and Previous.
func (p *Player) Play(songs []catalog.Song, index int) error {
	if !p.queue.Replace(songs, index) {
		return ErrNoSong
	}
	p.position = 0
	p.state = Playing
	return nil
}

// Stop stops playback and forgets the queue.
func (p *Player) Stop() {
	p.state = Stopped
	p.position = 0
	p.queue.Clear()
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state == Playing {
		p.state = Paused
	}
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	if p.state == Paused {
		p.state = Playing
	}
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

func (p *Player) State() State { return p.state }

// Song returns the selected song. It stays available while paused.
func (p *Player) Song() (catalog.Song, bool) {
	if p.state == Stopped {
		return catalog.Song{}, false
	}
	return p.queue.Current()
}

// Queue returns the songs Next and Previous move through.
func (p *Player) Queue() []catalog.Song {
	return p.queue.Songs()
}

// QueueIndex returns the position of the selected song in the queue.
func (p *Player) QueueIndex() int {
	return p.queue.CurrentIndex()
}

// Position returns the elapsed time into the song.
func (p *Player) Position() time.Duration {
	return p.position
}

// Duration returns the length of the selected song.
func (p *Player) Duration() time.Duration {
	song, ok := p.Song()
	if !ok {
		return 0
	}
	return song.Duration
}

// Seek moves the position by delta, clamped to the song.
func (p *Player) Seek(delta time.Duration) {
	if p.state == Stopped {
		return
	}
	p.position = min(max(p.position+delta, 0), p.Duration())
}

// Next skips to the following song in the queue.
func (p *Player) Next() bool {
	if p.state == Stopped || !p.queue.Next() {
		return false
	}
	p.position = 0
	return true
}

// Previous restarts the song when past the first seconds, otherwise steps
// back to the preceding song.
func (p *Player) Previous() bool {
	if p.state == Stopped {
		return false
	}
	if p.position > restartThreshold || !p.queue.Previous() {
		p.position = 0
		return false
	}
	p.position = 0
	return true
}

// Advance moves the clock forward by dt while playing. At the end of a
// song it continues with the next one, or stops after the last. It returns
// true when the selected song changed or playback stopped.
func (p *Player) Advance(dt time.Duration) bool {
	if p.state != Playing || dt <= 0 {
		return false
	}
	p.position += dt
	if p.position < p.Duration() {
		return false
	}
	if p.queue.Next() {
		p.position = 0
		return true
	}
	p.Stop()
	return true
}

// UpdateSong refreshes queued copies of a song, typically after a like.
func (p *Player) UpdateSong(song catalog.Song) {
	p.queue.Update(song)
}
