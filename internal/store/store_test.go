package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songdrop/internal/catalog"
)

var testNow = time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)

// setupTestStore opens an in-memory store loaded with the sample data.
func setupTestStore(t *testing.T) *Manager {
	t.Helper()

	m, err := OpenSeeded(context.Background(), catalog.SampleData(testNow),
		WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestLocations(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	locs, err := m.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, locs, 3)

	assert.Equal(t, "1", locs[0].ID)
	assert.Equal(t, "서울특별시 중구 명동", locs[0].Address)
	assert.Len(t, locs[0].Songs, 1)
	assert.Len(t, locs[1].Songs, 2)
	require.Len(t, locs[2].Songs, 8)

	// Songs keep their drop order and round-trip their fields.
	first := locs[2].Songs[0]
	assert.Equal(t, "Underwater", first.Title)
	assert.Equal(t, 3*time.Minute+21*time.Second, first.Duration)
	assert.Equal(t, "musiclover_01", first.DroppedBy)
	assert.True(t, first.DroppedAt.Equal(testNow.Add(-2*time.Hour)))
	assert.Equal(t, "8", locs[2].Songs[7].ID)

	assert.Equal(t, 11, catalog.TotalSongs(locs))
}

func TestLocation_NotFound(t *testing.T) {
	m := setupTestStore(t)

	_, err := m.Location(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.Song(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLike(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	before, err := m.Song(ctx, "1")
	require.NoError(t, err)
	require.False(t, before.Liked)

	user, err := m.User(ctx)
	require.NoError(t, err)
	picked := user.PickedSongs

	liked, err := m.ToggleLike(ctx, "1")
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, before.Likes+1, liked.Likes)

	user, err = m.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, picked+1, user.PickedSongs)

	// The like shows up at every location holding the song.
	locs, err := m.Locations(ctx)
	require.NoError(t, err)
	for _, loc := range locs {
		for _, s := range loc.Songs {
			if s.ID == "1" {
				assert.True(t, s.Liked, "location %s", loc.ID)
			}
		}
	}

	unliked, err := m.ToggleLike(ctx, "1")
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, before.Likes, unliked.Likes)

	user, err = m.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, picked, user.PickedSongs)
}

func TestToggleLike_RecordsPickActivity(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	_, err := m.ToggleLike(ctx, "3")
	require.NoError(t, err)

	items, err := m.RecentActivity(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.ActivityPick, items[0].Kind)
	assert.Equal(t, "Spicy", items[0].Title)
	assert.True(t, items[0].At.Equal(testNow))
}

func TestToggleLike_UnknownSong(t *testing.T) {
	m := setupTestStore(t)
	_, err := m.ToggleLike(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPlay(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, m.RecordPlay(ctx, "6"))
	s, err := m.Song(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, 4201, s.Plays)

	require.ErrorIs(t, m.RecordPlay(ctx, "missing"), ErrNotFound)
}

func TestDrop(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	rec, err := m.Drop(ctx, "lib-3", "3", "  summer walk  ")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "user1", rec.UserID)
	assert.True(t, rec.DroppedAt.Equal(testNow))

	loc, err := m.Location(ctx, "3")
	require.NoError(t, err)
	require.Len(t, loc.Songs, 9)
	dropped := loc.Songs[8]
	assert.Equal(t, "lib-3", dropped.ID)
	assert.Equal(t, "친절한 부엉이", dropped.DroppedBy)
	assert.Equal(t, "강남구 역삼동", dropped.Place)
	assert.Equal(t, "summer walk", dropped.Comment)

	user, err := m.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, user.DroppedSongs)

	drops, err := m.Drops(ctx)
	require.NoError(t, err)
	require.Len(t, drops, 1)
	assert.Equal(t, rec.ID, drops[0].ID)

	items, err := m.RecentActivity(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.ActivityDrop, items[0].Kind)
	assert.Equal(t, "Super Shy", items[0].Title)
}

func TestDrop_Errors(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	_, err := m.Drop(ctx, "1", "3", "")
	require.ErrorIs(t, err, ErrAlreadyDropped)

	_, err = m.Drop(ctx, "lib-1", "nowhere", "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.Drop(ctx, "missing", "3", "")
	require.ErrorIs(t, err, ErrNotFound)

	// Failed drops leave nothing behind.
	drops, err := m.Drops(ctx)
	require.NoError(t, err)
	assert.Empty(t, drops)
}

func TestLibraryAndTags(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	lib, err := m.Library(ctx)
	require.NoError(t, err)
	require.Len(t, lib, 7)
	assert.Equal(t, "lib-1", lib[0].ID)
	assert.ElementsMatch(t, []string{"여름", "여행"}, lib[0].Tags)

	tags, err := m.Tags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 10)
	assert.Equal(t, "(여자)아이들", tags[0])
	assert.Equal(t, "쇼핑", tags[9])
}

func TestRecentActivity_Order(t *testing.T) {
	m := setupTestStore(t)

	items, err := m.RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "좋아의 꿈", items[0].Title)
	assert.Equal(t, catalog.ActivityPick, items[2].Kind)
}

func TestSetUsername(t *testing.T) {
	m := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, m.SetUsername(ctx, "  night_owl "))
	u, err := m.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "night_owl", u.Username)

	require.NoError(t, m.SetUsername(ctx, "   "))
	u, err = m.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "night_owl", u.Username)
}

func TestNeighbourhood(t *testing.T) {
	assert.Equal(t, "강남구 역삼동", neighbourhood("서울특별시 강남구 역삼동"))
	assert.Equal(t, "마포구 홍대", neighbourhood("서울특별시 마포구 홍대"))
	assert.Equal(t, "명동", neighbourhood("명동"))
}
