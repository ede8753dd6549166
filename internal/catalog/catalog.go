// Package catalog defines the songdrop domain types and the helpers that
// operate on them without touching storage.
package catalog

import (
	"time"
)

// Song is a track dropped somewhere on the map.
type Song struct {
	ID        string
	Title     string
	Artist    string
	Album     string
	Cover     string // opaque artwork reference, never fetched
	Duration  time.Duration
	Liked     bool // picked by the current user
	Likes     int
	Plays     int
	DroppedBy string
	Place     string // neighbourhood label shown with the song
	Comment   string
	DroppedAt time.Time
	Tags      []string
}

// FilterValue is the text free-text search matches against.
func (s Song) FilterValue() string {
	return s.Title + " " + s.Artist + " " + s.Album
}

// Location is a map point holding dropped songs.
type Location struct {
	ID      string
	Lat     float64
	Lng     float64
	Address string
	Songs   []Song
}

// User is the signed-in listener.
type User struct {
	ID           string
	Username     string
	Level        int
	Followers    int
	Following    int
	DroppedSongs int
	PickedSongs  int
}

// Position is a latitude/longitude pair.
type Position struct {
	Lat float64
	Lng float64
}

// ActivityKind distinguishes drops from picks in the activity feed.
type ActivityKind string

const (
	ActivityDrop ActivityKind = "drop"
	ActivityPick ActivityKind = "pick"
)

// Activity is one entry of the profile's recent activity feed.
type Activity struct {
	Kind   ActivityKind
	Title  string
	Artist string
	Place  string
	Likes  int
	At     time.Time
}

// TotalSongs counts songs across locations. A song dropped at several
// locations is counted once per location.
func TotalSongs(locations []Location) int {
	total := 0
	for _, loc := range locations {
		total += len(loc.Songs)
	}
	return total
}

// FindSong returns the song with the given ID from the first location holding it.
func FindSong(locations []Location, id string) (Song, bool) {
	for _, loc := range locations {
		for _, s := range loc.Songs {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Song{}, false
}

// FindLocation returns the location with the given ID.
func FindLocation(locations []Location, id string) (Location, bool) {
	for _, loc := range locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
