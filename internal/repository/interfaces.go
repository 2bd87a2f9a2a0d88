package repository

import (
	"context"
	"errors"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// ErrNotFound marks lookups for roster records that do not exist.
var ErrNotFound = errors.New("not found")

// RosterRepo provides the read-only team/machine roster. Teams are returned
// in their configured rotation order; that order drives the coordinator
// cycle, so implementations must keep it stable.
type RosterRepo interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
}

// AuditStatusRepo is the narrow persistence interface for the status
// overlay: one atomic upsert per write, list and bulk delete per shift.
type AuditStatusRepo interface {
	Upsert(ctx context.Context, e *domain.AuditEntry) error
	Get(ctx context.Context, key domain.AuditKey) (domain.AuditStatus, error)
	ListByShift(ctx context.Context, shift domain.Shift) ([]*domain.AuditEntry, error)
	DeleteByShift(ctx context.Context, shift domain.Shift) error
}
