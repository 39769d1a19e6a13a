package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Two catalog collections plus the admin account. Rows are
	// addressed by document id; list order follows insertion (rowid).
	schema := `
	CREATE TABLE IF NOT EXISTS course (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		instructor TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		schedule TEXT NOT NULL DEFAULT '',
		price INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS workshop_session (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		hour REAL NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		time_string TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		seats TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
