package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/songdrop/internal/catalog"
	dbutil "github.com/llehouerou/songdrop/internal/db"
)

const songColumns = `s.id, s.title, s.artist, s.album, s.cover, s.duration_ms, s.liked, s.likes, s.plays,
	s.dropped_by, s.place, s.comment, s.dropped_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (catalog.Song, error) {
	var s catalog.Song
	var cover, droppedBy, place, comment sql.NullString
	var durationMs, droppedAt int64

	err := row.Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &cover, &durationMs, &s.Liked, &s.Likes, &s.Plays,
		&droppedBy, &place, &comment, &droppedAt)
	if err != nil {
		return catalog.Song{}, err
	}

	s.Cover = dbutil.NullStringValue(cover)
	s.Duration = time.Duration(durationMs) * time.Millisecond
	s.DroppedBy = dbutil.NullStringValue(droppedBy)
	s.Place = dbutil.NullStringValue(place)
	s.Comment = dbutil.NullStringValue(comment)
	s.DroppedAt = dbutil.UnixToTime(droppedAt)
	return s, nil
}

// Song returns a single song by ID.
func (m *Manager) Song(ctx context.Context, id string) (catalog.Song, error) {
	row := m.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs s WHERE s.id = ?`, id)
	s, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Song{}, fmt.Errorf("song %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return catalog.Song{}, err
	}

	tags, err := m.songTags(ctx, id)
	if err != nil {
		return catalog.Song{}, err
	}
	s.Tags = tags
	return s, nil
}

func (m *Manager) songTags(ctx context.Context, songID string) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT tag FROM song_tags WHERE song_id = ? ORDER BY tag`, songID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Locations returns every location with its songs in drop order.
func (m *Manager) Locations(ctx context.Context) ([]catalog.Location, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, lat, lng, address FROM locations ORDER BY position
	`)
	if err != nil {
		return nil, err
	}

	var locations []catalog.Location
	for rows.Next() {
		var loc catalog.Location
		if err := rows.Scan(&loc.ID, &loc.Lat, &loc.Lng, &loc.Address); err != nil {
			rows.Close()
			return nil, err
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// The single connection is free again once rows is closed.
	for i := range locations {
		songs, err := m.locationSongs(ctx, locations[i].ID)
		if err != nil {
			return nil, err
		}
		locations[i].Songs = songs
	}
	return locations, nil
}

// Location returns one location with its songs.
func (m *Manager) Location(ctx context.Context, id string) (catalog.Location, error) {
	var loc catalog.Location
	err := m.db.QueryRowContext(ctx, `
		SELECT id, lat, lng, address FROM locations WHERE id = ?
	`, id).Scan(&loc.ID, &loc.Lat, &loc.Lng, &loc.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Location{}, fmt.Errorf("location %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return catalog.Location{}, err
	}

	loc.Songs, err = m.locationSongs(ctx, id)
	if err != nil {
		return catalog.Location{}, err
	}
	return loc, nil
}

func (m *Manager) locationSongs(ctx context.Context, locationID string) ([]catalog.Song, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT `+songColumns+`
		FROM location_songs ls
		JOIN songs s ON s.id = ls.song_id
		WHERE ls.location_id = ?
		ORDER BY ls.position
	`, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []catalog.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// ToggleLike flips the current user's like on a song and keeps the like
// count and the user's pick count in step. Liking records a pick activity.
func (m *Manager) ToggleLike(ctx context.Context, songID string) (catalog.Song, error) {
	err := dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		var liked bool
		var title, artist string
		var place sql.NullString
		var likes int
		err := tx.QueryRowContext(ctx, `
			SELECT liked, likes, title, artist, place FROM songs WHERE id = ?
		`, songID).Scan(&liked, &likes, &title, &artist, &place)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("song %s: %w", songID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		delta := 1
		if liked {
			delta = -1
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE songs SET liked = ?, likes = MAX(likes + ?, 0) WHERE id = ?
		`, !liked, delta, songID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE users SET picked_songs = MAX(picked_songs + ?, 0) WHERE id = ?
		`, delta, m.userID); err != nil {
			return err
		}

		if !liked {
			return insertActivity(ctx, tx, catalog.Activity{
				Kind:   catalog.ActivityPick,
				Title:  title,
				Artist: artist,
				Place:  dbutil.NullStringValue(place),
				Likes:  likes + 1,
				At:     m.now(),
			})
		}
		return nil
	})
	if err != nil {
		return catalog.Song{}, err
	}
	return m.Song(ctx, songID)
}

// RecordPlay bumps a song's play count.
func (m *Manager) RecordPlay(ctx context.Context, songID string) error {
	res, err := m.db.ExecContext(ctx, `UPDATE songs SET plays = plays + 1 WHERE id = ?`, songID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("song %s: %w", songID, ErrNotFound)
	}
	return nil
}

// Library returns the songs available for dropping, with their tags.
func (m *Manager) Library(ctx context.Context) ([]catalog.Song, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT `+songColumns+` FROM songs s WHERE s.in_library = 1 ORDER BY s.rowid
	`)
	if err != nil {
		return nil, err
	}

	var songs []catalog.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range songs {
		tags, err := m.songTags(ctx, songs[i].ID)
		if err != nil {
			return nil, err
		}
		songs[i].Tags = tags
	}
	return songs, nil
}

// Tags returns the suggested search tags in display order.
func (m *Manager) Tags(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT name FROM tags ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
