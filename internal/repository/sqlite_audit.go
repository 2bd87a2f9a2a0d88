package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/db"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// SQLiteAuditRepo implements AuditStatusRepo on a SQLite database.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates an audit status repository over the given
// connection or transaction.
func NewSQLiteAuditRepo(dbtx db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: dbtx}
}

// Upsert records a status for a slot coordinate. Writing the same status
// twice leaves the row observably unchanged apart from updated_at; the last
// write wins on conflicting statuses.
func (r *SQLiteAuditRepo) Upsert(ctx context.Context, e *domain.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := nowUTC()
	query := `INSERT INTO audit_status (id, shift, week, assignee, day, machine_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(shift, week, assignee, day, machine_id)
		DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, string(e.Shift), e.Week, e.Assignee, e.Day, e.MachineID, string(e.Status), now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting audit status: %w", err)
	}
	return nil
}

// Get returns the recorded status for a slot coordinate. A missing row reads
// as StatusUnset; absence of a key is not an error.
func (r *SQLiteAuditRepo) Get(ctx context.Context, key domain.AuditKey) (domain.AuditStatus, error) {
	query := `SELECT status FROM audit_status
		WHERE shift = ? AND week = ? AND assignee = ? AND day = ? AND machine_id = ?`
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

// ListByShift returns every recorded entry for a shift in insertion order.
func (r *SQLiteAuditRepo) ListByShift(ctx context.Context, shift domain.Shift) ([]*domain.AuditEntry, error) {
	query := `SELECT id, shift, week, assignee, day, machine_id, status, created_at, updated_at
		FROM audit_status WHERE shift = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, string(shift))
	if err != nil {
		return nil, fmt.Errorf("listing audit status by shift: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

// DeleteByShift clears every entry for a shift. Clearing an empty shift
// succeeds silently.
func (r *SQLiteAuditRepo) DeleteByShift(ctx context.Context, shift domain.Shift) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM audit_status WHERE shift = ?`, string(shift)); err != nil {
		return fmt.Errorf("clearing audit status for shift %s: %w", shift, err)
	}
	return nil
}

func scanAuditEntries(rows *sql.Rows) ([]*domain.AuditEntry, error) {
	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var shift, status, createdAtStr, updatedAtStr string
		if err := rows.Scan(&e.ID, &shift, &e.Week, &e.Assignee, &e.Day, &e.MachineID, &status, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning audit status row: %w", err)
		}
		e.Shift = domain.Shift(shift)
		e.Status = domain.AuditStatus(status)
		var parseErr error
		e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit status rows: %w", err)
	}
	return entries, nil
}
