package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// PostgresAuditRepo implements AuditStatusRepo against the central plant
// Postgres database. Semantics match SQLiteAuditRepo: atomic upserts,
// missing keys read as unset, bulk delete per shift.
type PostgresAuditRepo struct {
	db *sql.DB
}

// NewPostgresAuditRepo creates an audit status repository over an open
// Postgres connection (see db.OpenPostgres).
func NewPostgresAuditRepo(pg *sql.DB) *PostgresAuditRepo {
	return &PostgresAuditRepo{db: pg}
}

func (r *PostgresAuditRepo) Upsert(ctx context.Context, e *domain.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	query := `INSERT INTO audit_status (id, shift, week, assignee, day, machine_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (shift, week, assignee, day, machine_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, string(e.Shift), e.Week, e.Assignee, e.Day, e.MachineID, string(e.Status), now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting audit status: %w", err)
	}
	return nil
}

func (r *PostgresAuditRepo) Get(ctx context.Context, key domain.AuditKey) (domain.AuditStatus, error) {
	query := `SELECT status FROM audit_status
		WHERE shift = $1 AND week = $2 AND assignee = $3 AND day = $4 AND machine_id = $5`
	var status string
	err := r.db.QueryRowContext(ctx, query,
		string(key.Shift), key.Week, key.Assignee, key.Day, key.MachineID,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return domain.StatusUnset, nil
	}
	if err != nil {
		return domain.StatusUnset, fmt.Errorf("reading audit status: %w", err)
	}
	return domain.AuditStatus(status), nil
}

func (r *PostgresAuditRepo) ListByShift(ctx context.Context, shift domain.Shift) ([]*domain.AuditEntry, error) {
	query := `SELECT id, shift, week, assignee, day, machine_id, status, created_at, updated_at
		FROM audit_status WHERE shift = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, string(shift))
	if err != nil {
		return nil, fmt.Errorf("listing audit status by shift: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var shiftStr, status string
		if err := rows.Scan(&e.ID, &shiftStr, &e.Week, &e.Assignee, &e.Day, &e.MachineID, &status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning audit status row: %w", err)
		}
		e.Shift = domain.Shift(shiftStr)
		e.Status = domain.AuditStatus(status)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit status rows: %w", err)
	}
	return entries, nil
}

func (r *PostgresAuditRepo) DeleteByShift(ctx context.Context, shift domain.Shift) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM audit_status WHERE shift = $1`, string(shift)); err != nil {
		return fmt.Errorf("clearing audit status for shift %s: %w", shift, err)
	}
	return nil
}

// Compile-time interface checks for both store backends.
var (
	_ AuditStatusRepo = (*SQLiteAuditRepo)(nil)
	_ AuditStatusRepo = (*PostgresAuditRepo)(nil)
	_ RosterRepo      = (*SQLiteRosterRepo)(nil)
)
