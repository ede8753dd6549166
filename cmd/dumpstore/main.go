// Command dumpstore seeds the in-memory store with the sample data and prints
// what the map would show, sorted the way the location popup sorts.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/store"
)

func main() {
	sortFlag := flag.String("sort", "latest", "song order: latest, likes or plays")
	flag.Parse()

	mode := catalog.SortLatest
	switch *sortFlag {
	case "likes":
		mode = catalog.SortLikes
	case "plays":
		mode = catalog.SortPlays
	}

	now := time.Now()
	ctx := context.Background()
	st, err := store.OpenSeeded(ctx, catalog.SampleData(now))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	locs, err := st.Locations(ctx)
	if err != nil {
		log.Fatalf("Failed to load locations: %v", err)
	}
	log.Printf("%d locations, %d songs dropped", len(locs), catalog.TotalSongs(locs))

	for _, loc := range locs {
		log.Printf("[%s] %s (%.4f, %.4f)", loc.ID, loc.Address, loc.Lat, loc.Lng)
		for i, s := range catalog.SortSongs(loc.Songs, mode) {
			log.Printf("  %d. %s - %s  likes %s  plays %s  by %s %s",
				i+1, s.Title, s.Artist,
				humanize.Comma(int64(s.Likes)), humanize.Comma(int64(s.Plays)),
				s.DroppedBy, humanize.RelTime(s.DroppedAt, now, "ago", "from now"))
		}
	}

	user, err := st.User(ctx)
	if err != nil {
		log.Fatalf("Failed to load user: %v", err)
	}
	log.Printf("user %s  %s  followers %s", user.Username, catalog.LevelBadge(user.Level), humanize.Comma(int64(user.Followers)))
}
