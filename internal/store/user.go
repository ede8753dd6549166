package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/llehouerou/songdrop/internal/catalog"
	dbutil "github.com/llehouerou/songdrop/internal/db"
)

// User returns the current user.
func (m *Manager) User(ctx context.Context) (catalog.User, error) {
	var u catalog.User
	err := m.db.QueryRowContext(ctx, `
		SELECT id, username, level, followers, following, dropped_songs, picked_songs
		FROM users WHERE id = ?
	`, m.userID).Scan(&u.ID, &u.Username, &u.Level, &u.Followers, &u.Following, &u.DroppedSongs, &u.PickedSongs)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.User{}, fmt.Errorf("user %s: %w", m.userID, ErrNotFound)
	}
	if err != nil {
		return catalog.User{}, err
	}
	return u, nil
}

// RecentActivity returns up to limit activity entries, newest first.
// A limit of zero or less returns everything.
func (m *Manager) RecentActivity(ctx context.Context, limit int) ([]catalog.Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := m.db.QueryContext(ctx, `
		SELECT kind, title, artist, place, likes, at FROM activity
		ORDER BY at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Activity
	for rows.Next() {
		var a catalog.Activity
		var kind string
		var place sql.NullString
		var at int64
		if err := rows.Scan(&kind, &a.Title, &a.Artist, &place, &a.Likes, &at); err != nil {
			return nil, err
		}
		a.Kind = catalog.ActivityKind(kind)
		a.Place = dbutil.NullStringValue(place)
		a.At = dbutil.UnixToTime(at)
		items = append(items, a)
	}
	return items, rows.Err()
}
