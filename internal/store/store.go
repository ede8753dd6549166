// Package store keeps songdrop's sample data in an in-memory SQLite database.
// Nothing is written to disk; every run starts from the seed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/songdrop/internal/catalog"
	dbutil "github.com/llehouerou/songdrop/internal/db"
)

// ErrNotFound is returned when a song, location or user does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyDropped is returned when a song is dropped twice at a location.
var ErrAlreadyDropped = errors.New("song already dropped here")

type Manager struct {
	db     *sql.DB
	now    func() time.Time
	userID string
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the clock used to timestamp drops and picks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Open creates an empty in-memory store with the schema initialized.
func Open(ctx context.Context, opts ...Option) (*Manager, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	m := &Manager{db: db, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// OpenSeeded opens a store and loads the given seed.
func OpenSeeded(ctx context.Context, seed catalog.Seed, opts ...Option) (*Manager, error) {
	m, err := Open(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.Seed(ctx, seed); err != nil {
		m.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return m, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// Seed loads sample data. The seed's user becomes the current user.
func (m *Manager) Seed(ctx context.Context, seed catalog.Seed) error {
	err := dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		for _, s := range seed.Songs {
			if err := insertSong(ctx, tx, s, false); err != nil {
				return err
			}
		}
		for _, s := range seed.Library {
			if err := insertSong(ctx, tx, s, true); err != nil {
				return err
			}
		}

		for i, loc := range seed.Locations {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO locations (id, lat, lng, address, position) VALUES (?, ?, ?, ?, ?)
			`, loc.ID, loc.Lat, loc.Lng, loc.Address, i); err != nil {
				return err
			}
			for pos, songID := range loc.SongIDs {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO location_songs (location_id, song_id, position) VALUES (?, ?, ?)
				`, loc.ID, songID, pos); err != nil {
					return fmt.Errorf("location %s song %s: %w", loc.ID, songID, err)
				}
			}
		}

		for i, tag := range seed.Tags {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tags (position, name) VALUES (?, ?)
			`, i, tag); err != nil {
				return err
			}
		}

		u := seed.User
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, level, followers, following, dropped_songs, picked_songs)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.Username, u.Level, u.Followers, u.Following, u.DroppedSongs, u.PickedSongs); err != nil {
			return err
		}

		for _, a := range seed.Activity {
			if err := insertActivity(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.userID = seed.User.ID
	return nil
}

// SetUsername renames the current user.
func (m *Manager) SetUsername(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := m.db.ExecContext(ctx, `UPDATE users SET username = ? WHERE id = ?`, name, m.userID)
	return err
}

func insertSong(ctx context.Context, tx *sql.Tx, s catalog.Song, inLibrary bool) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO songs (id, title, artist, album, cover, duration_ms, liked, likes, plays,
		                   dropped_by, place, comment, dropped_at, in_library)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Title, s.Artist, s.Album, dbutil.NullString(s.Cover), s.Duration.Milliseconds(),
		s.Liked, s.Likes, s.Plays, dbutil.NullString(s.DroppedBy), dbutil.NullString(s.Place),
		dbutil.NullString(s.Comment), dbutil.TimeToUnix(s.DroppedAt), inLibrary)
	if err != nil {
		return fmt.Errorf("insert song %s: %w", s.ID, err)
	}

	for _, tag := range s.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO song_tags (song_id, tag) VALUES (?, ?)
		`, s.ID, tag); err != nil {
			return err
		}
	}
	return nil
}

func insertActivity(ctx context.Context, tx *sql.Tx, a catalog.Activity) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO activity (kind, title, artist, place, likes, at) VALUES (?, ?, ?, ?, ?, ?)
	`, string(a.Kind), a.Title, a.Artist, dbutil.NullString(a.Place), a.Likes, dbutil.TimeToUnix(a.At))
	return err
}
