package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/songdrop/internal/catalog"
	dbutil "github.com/llehouerou/songdrop/internal/db"
)

// DropRecord is one song dropped by the current user during this session.
type DropRecord struct {
	ID         string
	SongID     string
	LocationID string
	UserID     string
	DroppedAt  time.Time
}

// Drop places a song at a location on behalf of the current user. The song
// is appended after the location's existing songs.
func (m *Manager) Drop(ctx context.Context, songID, locationID, comment string) (DropRecord, error) {
	rec := DropRecord{
		ID:         uuid.NewString(),
		SongID:     songID,
		LocationID: locationID,
		UserID:     m.userID,
		DroppedAt:  m.now(),
	}

	err := dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		var username string
		err := tx.QueryRowContext(ctx, `SELECT username FROM users WHERE id = ?`, m.userID).Scan(&username)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %s: %w", m.userID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var address string
		err = tx.QueryRowContext(ctx, `SELECT address FROM locations WHERE id = ?`, locationID).Scan(&address)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("location %s: %w", locationID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var title, artist string
		err = tx.QueryRowContext(ctx, `SELECT title, artist FROM songs WHERE id = ?`, songID).Scan(&title, &artist)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("song %s: %w", songID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var exists int
		if err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM location_songs WHERE location_id = ? AND song_id = ?
		`, locationID, songID).Scan(&exists); err != nil {
			return err
		}
		if exists > 0 {
			return ErrAlreadyDropped
		}

		var nextPos int
		if err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(position) + 1, 0) FROM location_songs WHERE location_id = ?
		`, locationID).Scan(&nextPos); err != nil {
			return err
		}

		place := neighbourhood(address)
		at := dbutil.TimeToUnix(rec.DroppedAt)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO location_songs (location_id, song_id, position) VALUES (?, ?, ?)
		`, locationID, songID, nextPos); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE songs SET dropped_by = ?, place = ?, comment = ?, dropped_at = ? WHERE id = ?
		`, username, place, dbutil.NullString(strings.TrimSpace(comment)), at, songID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO drops (id, song_id, location_id, user_id, dropped_at) VALUES (?, ?, ?, ?, ?)
		`, rec.ID, songID, locationID, m.userID, at); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE users SET dropped_songs = dropped_songs + 1 WHERE id = ?
		`, m.userID); err != nil {
			return err
		}

		return insertActivity(ctx, tx, catalog.Activity{
			Kind:   catalog.ActivityDrop,
			Title:  title,
			Artist: artist,
			Place:  place,
			At:     rec.DroppedAt,
		})
	})
	if err != nil {
		return DropRecord{}, err
	}
	return rec, nil
}

// Drops returns this session's drops, newest first.
func (m *Manager) Drops(ctx context.Context) ([]DropRecord, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, song_id, location_id, user_id, dropped_at FROM drops
		ORDER BY dropped_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drops []DropRecord
	for rows.Next() {
		var d DropRecord
		var at int64
		if err := rows.Scan(&d.ID, &d.SongID, &d.LocationID, &d.UserID, &at); err != nil {
			return nil, err
		}
		d.DroppedAt = dbutil.UnixToTime(at)
		drops = append(drops, d)
	}
	return drops, rows.Err()
}

// neighbourhood trims the city and district prefix from a full address,
// "서울특별시 강남구 역삼동" becoming "강남구 역삼동".
func neighbourhood(address string) string {
	fields := strings.Fields(address)
	if len(fields) <= 2 {
		return address
	}
	return strings.Join(fields[1:], " ")
}
