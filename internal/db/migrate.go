package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of schema statements. Every statement is
// idempotent, so Migrate can re-run the full list on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id       TEXT PRIMARY KEY,
		label    TEXT NOT NULL,
		reparto  TEXT NOT NULL,
		leader   TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS machines (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		reparto   TEXT NOT NULL,
		min_staff INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_machines_reparto ON machines(reparto)`,

	// The overlay store. The UNIQUE constraint is the slot coordinate; the
	// machine id is part of it so a recorded status stays attached to the
	// machine it was recorded for.
	`CREATE TABLE IF NOT EXISTS audit_status (
		id         TEXT PRIMARY KEY,
		shift      TEXT NOT NULL CHECK(shift IN ('A','B','C','D')),
		week       INTEGER NOT NULL CHECK(week >= 1),
		assignee   TEXT NOT NULL,
		day        INTEGER NOT NULL CHECK(day BETWEEN 0 AND 5),
		machine_id TEXT NOT NULL,
		status     TEXT NOT NULL CHECK(status IN ('unset','pass','fail','absent')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(shift, week, assignee, day, machine_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_status_shift ON audit_status(shift)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_status_shift_assignee ON audit_status(shift, assignee)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
