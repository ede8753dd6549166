package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)

func sampleLocations(t *testing.T) []Location {
	t.Helper()
	seed := SampleData(testNow)
	byID := make(map[string]Song, len(seed.Songs))
	for _, s := range seed.Songs {
		byID[s.ID] = s
	}
	locs := make([]Location, 0, len(seed.Locations))
	for _, ls := range seed.Locations {
		loc := Location{ID: ls.ID, Lat: ls.Lat, Lng: ls.Lng, Address: ls.Address}
		for _, id := range ls.SongIDs {
			s, ok := byID[id]
			require.True(t, ok, "seed references unknown song %s", id)
			loc.Songs = append(loc.Songs, s)
		}
		locs = append(locs, loc)
	}
	return locs
}

func TestSampleData_Shape(t *testing.T) {
	seed := SampleData(testNow)

	assert.Len(t, seed.Songs, 8)
	assert.Len(t, seed.Locations, 3)
	assert.Equal(t, "친절한 부엉이", seed.User.Username)
	assert.Equal(t, 3, seed.User.Level)
	assert.NotEmpty(t, seed.Library)
	assert.Len(t, seed.Tags, 10)

	// 역삼동 holds every sample song.
	assert.Len(t, seed.Locations[2].SongIDs, len(seed.Songs))

	// Library IDs must not collide with dropped song IDs.
	ids := map[string]bool{}
	for _, s := range seed.Songs {
		ids[s.ID] = true
	}
	for _, s := range seed.Library {
		assert.False(t, ids[s.ID], "library id %s collides", s.ID)
	}
}

func TestTotalSongs(t *testing.T) {
	locs := sampleLocations(t)
	assert.Equal(t, 11, TotalSongs(locs))
	assert.Equal(t, 0, TotalSongs(nil))
}

func TestFindSongAndLocation(t *testing.T) {
	locs := sampleLocations(t)

	s, ok := FindSong(locs, "6")
	require.True(t, ok)
	assert.Equal(t, "Seven", s.Title)

	_, ok = FindSong(locs, "missing")
	assert.False(t, ok)

	loc, ok := FindLocation(locs, "2")
	require.True(t, ok)
	assert.Equal(t, "서울특별시 마포구 홍대", loc.Address)
	assert.Len(t, loc.Songs, 2)
}

func TestSortSongs(t *testing.T) {
	loc, ok := FindLocation(sampleLocations(t), "3")
	require.True(t, ok)

	tests := []struct {
		name  string
		mode  SortMode
		first string
		last  string
	}{
		{"latest puts newest drop first", SortLatest, "6", "3"},
		{"likes puts most liked first", SortLikes, "6", "4"},
		{"plays puts most played first", SortPlays, "6", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortSongs(loc.Songs, tt.mode)
			require.Len(t, sorted, len(loc.Songs))
			assert.Equal(t, tt.first, sorted[0].ID)
			assert.Equal(t, tt.last, sorted[len(sorted)-1].ID)
		})
	}

	// The input slice is left untouched.
	assert.Equal(t, "1", loc.Songs[0].ID)
}

func TestSortSongs_StableOnTies(t *testing.T) {
	songs := []Song{{ID: "a", Plays: 5}, {ID: "b", Plays: 9}, {ID: "c", Plays: 5}}
	sorted := SortSongs(songs, SortPlays)
	assert.Equal(t, []string{"b", "a", "c"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortMode_Cycle(t *testing.T) {
	assert.Equal(t, SortLikes, SortLatest.Next())
	assert.Equal(t, SortPlays, SortLikes.Next())
	assert.Equal(t, SortLatest, SortPlays.Next())
	assert.False(t, SortLatest.Ranked())
	assert.True(t, SortPlays.Ranked())
	assert.Equal(t, "Likes", SortLikes.String())
}

func TestSearch(t *testing.T) {
	lib := SampleData(testNow).Library

	tests := []struct {
		name  string
		query string
		tags  []string
		want  []string
	}{
		{"empty query and tags yields nothing", "", nil, nil},
		{"title match is case-insensitive", "spicy", nil, []string{"lib-2"}},
		{"artist match", "newjeans", nil, []string{"lib-3"}},
		{"tag only", "", []string{"여름"}, []string{"lib-1", "lib-3", "lib-7"}},
		{"query and tag combine", "hot", []string{"여름"}, []string{"lib-7"}},
		{"tag comparison ignores case", "", []string{"aespa"}, []string{"lib-2"}},
		{"typo still matches", "summr", nil, []string{"lib-7"}},
		{"hangul title", "벚꽃", nil, []string{"lib-5"}},
		{"no match", "zzz", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, s := range Search(lib, tt.query, tt.tags) {
				got = append(got, s.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearest(t *testing.T) {
	locs := sampleLocations(t)

	loc, ok := Nearest(locs, Position{Lat: 37.5170, Lng: 127.0470})
	require.True(t, ok)
	assert.Equal(t, "3", loc.ID)

	loc, ok = Nearest(locs, Position{Lat: 37.5600, Lng: 126.9430})
	require.True(t, ok)
	assert.Equal(t, "2", loc.ID)

	_, ok = Nearest(nil, Position{})
	assert.False(t, ok)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "999", CompactCount(999))
	assert.Equal(t, "1000", CompactCount(1000))
	assert.Equal(t, "1k", CompactCount(1200))
	assert.Equal(t, "4k", CompactCount(4200))

	assert.Equal(t, "3,200", GroupedCount(3200))

	assert.Equal(t, "1", MarkerBadge(1))
	assert.Equal(t, "9", MarkerBadge(9))
	assert.Equal(t, "9+", MarkerBadge(10))

	assert.Equal(t, "3:21", FormatDuration(mmss(3, 21)))
	assert.Equal(t, "0:00", FormatDuration(-time.Second))

	assert.Equal(t, "2 hours ago", Ago(testNow.Add(-2*time.Hour), testNow))
	assert.Empty(t, Ago(time.Time{}, testNow))
}
