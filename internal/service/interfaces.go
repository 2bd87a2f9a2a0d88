package service

import (
	"context"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
)

// ScheduleService generates the deterministic week plan. The schedule is a
// pure function of (week, shift, roster); nothing generated here is ever
// persisted.
type ScheduleService interface {
	GenerateWeek(ctx context.Context, req contract.WeekScheduleRequest) (*contract.WeekScheduleResponse, error)
}

// AuditService owns the status overlay: the only mutable state in the core.
type AuditService interface {
	SetStatus(ctx context.Context, key domain.AuditKey, status domain.AuditStatus) error
	GetStatus(ctx context.Context, key domain.AuditKey) (domain.AuditStatus, error)
	ClearShift(ctx context.Context, shift domain.Shift) error
}

// StatsService aggregates recorded statuses per shift, scoped globally, per
// team, or to the coordinator role.
type StatsService interface {
	GetStats(ctx context.Context, req contract.StatsRequest) (*contract.StatsReport, error)
}

// ExportService flattens the overlay into sink-ready rows. It never
// filters; row selection is the caller's concern.
type ExportService interface {
	BuildExport(ctx context.Context, shift domain.Shift) ([]contract.ExportRow, error)
}

// RosterImportResult holds the outcome of a roster import.
type RosterImportResult struct {
	TeamCount    int
	MachineCount int
}

// RosterService manages the roster tables consumed by the engine.
type RosterService interface {
	Import(ctx context.Context, filePath string) (*RosterImportResult, error)
	List(ctx context.Context) ([]domain.Team, []domain.Machine, error)
}
