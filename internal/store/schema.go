package store

import (
	"database/sql"
	"fmt"
)

// schema is applied at open. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS vocab_tables (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		columns TEXT NOT NULL DEFAULT '[]',
		relations TEXT NOT NULL DEFAULT '[]',
		created_at INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS vocab_rows (
		table_id TEXT NOT NULL REFERENCES vocab_tables(id) ON DELETE CASCADE,
		id TEXT NOT NULL,
		position INTEGER NOT NULL,
		cols TEXT NOT NULL DEFAULT '{}',
		correct INTEGER NOT NULL DEFAULT 0,
		incorrect INTEGER NOT NULL DEFAULT 0,
		last_studied INTEGER NOT NULL DEFAULT 0,
		flashcard_status TEXT NOT NULL DEFAULT '',
		flashcard_encounters INTEGER NOT NULL DEFAULT 0,
		last_practiced INTEGER NOT NULL DEFAULT 0,
		reviewed INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (table_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS flashcard_queues (
		queue_key TEXT PRIMARY KEY,
		row_ids TEXT NOT NULL DEFAULT '[]',
		updated_at INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		sequence INTEGER PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		phase TEXT NOT NULL,
		questions INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		xp INTEGER NOT NULL DEFAULT 0,
		duration_secs INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS review_events (
		sequence INTEGER PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		table_id TEXT NOT NULL,
		row_id TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
