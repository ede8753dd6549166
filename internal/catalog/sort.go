package catalog

import (
	"slices"
	"strings"

	"github.com/llehouerou/songdrop/internal/search"
)

// SortMode orders the songs of a location.
type SortMode int

const (
	SortLatest SortMode = iota // most recent drop first
	SortLikes                  // most liked first
	SortPlays                  // most played first
)

// SortModes lists the modes in display order.
var SortModes = []SortMode{SortLatest, SortLikes, SortPlays}

// String returns the display label.
func (m SortMode) String() string {
	switch m {
	case SortLikes:
		return "Likes"
	case SortPlays:
		return "Plays"
	default:
		return "Latest"
	}
}

// Next cycles to the following mode.
func (m SortMode) Next() SortMode {
	return SortModes[(int(m)+1)%len(SortModes)]
}

// Ranked reports whether positions under this mode are a ranking worth badging.
func (m SortMode) Ranked() bool {
	return m != SortLatest
}

// SortSongs returns a sorted copy of songs. Ties keep their original order.
func SortSongs(songs []Song, mode SortMode) []Song {
	sorted := slices.Clone(songs)
	slices.SortStableFunc(sorted, func(a, b Song) int {
		switch mode {
		case SortLikes:
			return b.Likes - a.Likes
		case SortPlays:
			return b.Plays - a.Plays
		default:
			return b.DroppedAt.Compare(a.DroppedAt)
		}
	})
	return sorted
}

// Search filters the library by tags, then ranks it against a free-text
// query over title, artist and album. A song matches the tags when any
// selected tag is one of its tags. Close spellings still match; better
// matches come first. An empty query with no tags yields no results.
func Search(library []Song, query string, tags []string) []Song {
	query = strings.TrimSpace(query)
	if query == "" && len(tags) == 0 {
		return nil
	}

	var candidates []Song
	for _, s := range library {
		if len(tags) > 0 && !matchesAnyTag(s, tags) {
			continue
		}
		candidates = append(candidates, s)
	}
	if query == "" {
		return candidates
	}

	var results []Song
	for _, match := range search.NewMatcher(candidates).Search(query) {
		results = append(results, candidates[match.Index])
	}
	return results
}

func matchesAnyTag(s Song, tags []string) bool {
	for _, want := range tags {
		for _, have := range s.Tags {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}
