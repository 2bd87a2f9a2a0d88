package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/db"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// SQLiteRosterRepo implements RosterRepo on the shared SQLite database. The
// roster tables are written only by the import command; the engine reads
// them.
type SQLiteRosterRepo struct {
	db db.DBTX
}

// NewSQLiteRosterRepo creates a roster repository over the given connection
// or transaction.
func NewSQLiteRosterRepo(dbtx db.DBTX) *SQLiteRosterRepo {
	return &SQLiteRosterRepo{db: dbtx}
}

func (r *SQLiteRosterRepo) ListTeams(ctx context.Context) ([]domain.Team, error) {
	query := `SELECT id, label, reparto, leader FROM teams ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Label, &t.Reparto, &t.Leader); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}
	return teams, nil
}

func (r *SQLiteRosterRepo) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	query := `SELECT id, name, reparto, min_staff FROM machines ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}
	defer rows.Close()

	var machines []domain.Machine
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Reparto, &m.MinStaff); err != nil {
			return nil, fmt.Errorf("scanning machine row: %w", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating machine rows: %w", err)
	}
	return machines, nil
}

func (r *SQLiteRosterRepo) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	query := `SELECT id, name, reparto, min_staff FROM machines WHERE id = ?`
	var m domain.Machine
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Reparto, &m.MinStaff)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("machine %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading machine: %w", err)
	}
	return &m, nil
}

// Replace overwrites the whole roster. Callers run it inside a unit of work
// so a failed import never leaves a half-replaced roster.
func (r *SQLiteRosterRepo) Replace(ctx context.Context, teams []domain.Team, machines []domain.Machine) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("clearing teams: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM machines`); err != nil {
		return fmt.Errorf("clearing machines: %w", err)
	}
	for i, t := range teams {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO teams (id, label, reparto, leader, position) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Label, t.Reparto, t.Leader, i,
		); err != nil {
			return fmt.Errorf("inserting team %s: %w", t.ID, err)
		}
	}
	for _, m := range machines {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO machines (id, name, reparto, min_staff) VALUES (?, ?, ?, ?)`,
			m.ID, m.Name, m.Reparto, m.MinStaff,
		); err != nil {
			return fmt.Errorf("inserting machine %s: %w", m.ID, err)
		}
	}
	return nil
}
