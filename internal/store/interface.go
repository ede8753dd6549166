package store

import (
	"context"

	"github.com/llehouerou/songdrop/internal/catalog"
)

// Interface defines the store contract the UI depends on.
type Interface interface {
	Locations(ctx context.Context) ([]catalog.Location, error)
	Location(ctx context.Context, id string) (catalog.Location, error)
	Song(ctx context.Context, id string) (catalog.Song, error)
	ToggleLike(ctx context.Context, songID string) (catalog.Song, error)
	RecordPlay(ctx context.Context, songID string) error
	Drop(ctx context.Context, songID, locationID, comment string) (DropRecord, error)
	Drops(ctx context.Context) ([]DropRecord, error)
	User(ctx context.Context) (catalog.User, error)
	Library(ctx context.Context) ([]catalog.Song, error)
	Tags(ctx context.Context) ([]string, error)
	RecentActivity(ctx context.Context, limit int) ([]catalog.Activity, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
