package player

import (
	"slices"

	"github.com/llehouerou/songdrop/internal/catalog"
)

// Queue is the list a song was picked from, with the playing position.
type Queue struct {
	songs   []catalog.Song
	current int // -1 if nothing selected
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{current: -1}
}

// Replace swaps in a copy of songs and moves to index. Returns false and
// leaves the queue untouched if index is out of range.
func (q *Queue) Replace(songs []catalog.Song, index int) bool {
	if index < 0 || index >= len(songs) {
		return false
	}
	q.songs = slices.Clone(songs)
	q.current = index
	return true
}

// Current returns the selected song.
func (q *Queue) Current() (catalog.Song, bool) {
	if q.current < 0 || q.current >= len(q.songs) {
		return catalog.Song{}, false
	}
	return q.songs[q.current], true
}

// CurrentIndex returns the selected position (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.current
}

// HasNext returns true if there's a song after the current one.
func (q *Queue) HasNext() bool {
	return q.current >= 0 && q.current < len(q.songs)-1
}

// HasPrevious returns true if there's a song before the current one.
func (q *Queue) HasPrevious() bool {
	return q.current > 0
}

// Next advances to the following song.
func (q *Queue) Next() bool {
	if !q.HasNext() {
		return false
	}
	q.current++
	return true
}

// Previous steps back to the preceding song.
func (q *Queue) Previous() bool {
	if !q.HasPrevious() {
		return false
	}
	q.current--
	return true
}

// Update replaces every copy of a song, matched by ID.
func (q *Queue) Update(song catalog.Song) {
	for i := range q.songs {
		if q.songs[i].ID == song.ID {
			q.songs[i] = song
		}
	}
}

// Songs returns the queued songs.
func (q *Queue) Songs() []catalog.Song {
	return q.songs
}

// Len returns the number of queued songs.
func (q *Queue) Len() int {
	return len(q.songs)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.songs = nil
	q.current = -1
}
