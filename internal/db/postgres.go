package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// postgresSchema mirrors the sqlite audit_status table in Postgres dialect.
// Sites that keep audit results in the central plant database point the
// planner at it with a DSN instead of the local file.
const postgresSchema = `CREATE TABLE IF NOT EXISTS audit_status (
	id         TEXT PRIMARY KEY,
	shift      TEXT NOT NULL CHECK(shift IN ('A','B','C','D')),
	week       INTEGER NOT NULL CHECK(week >= 1),
	assignee   TEXT NOT NULL,
	day        INTEGER NOT NULL CHECK(day BETWEEN 0 AND 5),
	machine_id TEXT NOT NULL,
	status     TEXT NOT NULL CHECK(status IN ('unset','pass','fail','absent')),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE(shift, week, assignee, day, machine_id)
)`

// OpenPostgres connects to the central audit database and ensures the
// audit_status table exists.
func OpenPostgres(dsn string) (*sql.DB, error) {
	pg, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := pg.Ping(); err != nil {
		pg.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := pg.Exec(postgresSchema); err != nil {
		pg.Close()
		return nil, fmt.Errorf("ensuring audit_status schema: %w", err)
	}
	return pg, nil
}
