package service

import (
	"context"
	"fmt"
	"math"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
)

type statsService struct {
	audits repository.AuditStatusRepo
}

// NewStatsService creates the statistics aggregator over the overlay store.
// It never touches the generator: counts are derived from recorded entries
// alone.
func NewStatsService(audits repository.AuditStatusRepo) StatsService {
	return &statsService{audits: audits}
}

func (s *statsService) GetStats(ctx context.Context, req contract.StatsRequest) (*contract.StatsReport, error) {
	if !req.Shift.Valid() {
		return nil, fmt.Errorf("shift %q: %w", req.Shift, domain.ErrInvalidArgument)
	}
	switch req.Scope {
	case contract.ScopeGlobal, contract.ScopeCoordinator:
	case contract.ScopeTeam:
		if req.TeamID == "" {
			return nil, fmt.Errorf("team scope requires a team id: %w", domain.ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("scope %q: %w", req.Scope, domain.ErrInvalidArgument)
	}

	entries, err := s.audits.ListByShift(ctx, req.Shift)
	if err != nil {
		return nil, fmt.Errorf("loading recorded statuses: %w", err)
	}

	report := &contract.StatsReport{Shift: req.Shift, Scope: req.Scope, TeamID: req.TeamID}
	for _, e := range entries {
		if !inScope(e, req) {
			continue
		}
		report.Total++
		switch e.Status {
		case domain.StatusPass:
			report.Pass++
		case domain.StatusFail:
			report.Fail++
		case domain.StatusAbsent:
			report.Absent++
		default:
			report.Unset++
		}
	}
	report.CompletionPct = completionPct(report.Pass, report.Total)
	return report, nil
}

func inScope(e *domain.AuditEntry, req contract.StatsRequest) bool {
	switch req.Scope {
	case contract.ScopeTeam:
		return e.Assignee == req.TeamID
	case contract.ScopeCoordinator:
		return e.Assignee == domain.CoordinatorAssignee
	}
	return true
}

// completionPct rounds Pass/Total to whole percent. Each scope computes its
// own rounding independently.
func completionPct(pass, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(pass) / float64(total) * 100))
}
