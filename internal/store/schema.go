package store

import (
	"context"
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS songs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			album TEXT NOT NULL,
			cover TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			liked INTEGER NOT NULL DEFAULT 0,
			likes INTEGER NOT NULL DEFAULT 0,
			plays INTEGER NOT NULL DEFAULT 0,
			dropped_by TEXT,
			place TEXT,
			comment TEXT,
			dropped_at INTEGER NOT NULL DEFAULT 0,
			in_library INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS song_tags (
			song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
			tag TEXT NOT NULL,
			PRIMARY KEY (song_id, tag)
		);

		CREATE TABLE IF NOT EXISTS tags (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS locations (
			id TEXT PRIMARY KEY,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			address TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS location_songs (
			location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
			song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			PRIMARY KEY (location_id, song_id)
		);

		CREATE INDEX IF NOT EXISTS idx_location_songs_position ON location_songs(location_id, position);

		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			followers INTEGER NOT NULL DEFAULT 0,
			following INTEGER NOT NULL DEFAULT 0,
			dropped_songs INTEGER NOT NULL DEFAULT 0,
			picked_songs INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS drops (
			id TEXT PRIMARY KEY,
			song_id TEXT NOT NULL REFERENCES songs(id),
			location_id TEXT NOT NULL REFERENCES locations(id),
			user_id TEXT NOT NULL REFERENCES users(id),
			dropped_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			place TEXT,
			likes INTEGER NOT NULL DEFAULT 0,
			at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_activity_at ON activity(at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
