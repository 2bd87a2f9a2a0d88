package service

import (
	"context"
	"fmt"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/calendar"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/rotation"
)

type exportService struct {
	roster repository.RosterRepo
	audits repository.AuditStatusRepo
}

// NewExportService creates the export transform. It flattens every overlay
// entry of a shift, including unset rows; callers filter if they need to.
func NewExportService(roster repository.RosterRepo, audits repository.AuditStatusRepo) ExportService {
	return &exportService{roster: roster, audits: audits}
}

func (s *exportService) BuildExport(ctx context.Context, shift domain.Shift) ([]contract.ExportRow, error) {
	if !shift.Valid() {
		return nil, fmt.Errorf("shift %q: %w", shift, domain.ErrInvalidArgument)
	}

	entries, err := s.audits.ListByShift(ctx, shift)
	if err != nil {
		return nil, fmt.Errorf("loading recorded statuses: %w", err)
	}
	teams, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	machines, err := s.roster.ListMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading machines: %w", err)
	}

	teamByID := make(map[string]domain.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	machineByID := make(map[string]domain.Machine, len(machines))
	for _, m := range machines {
		machineByID[m.ID] = m
	}

	rows := make([]contract.ExportRow, 0, len(entries))
	for _, e := range entries {
		date, err := calendar.DayDate(e.Week, e.Day)
		if err != nil {
			return nil, fmt.Errorf("resolving date for week %d day %d: %w", e.Week, e.Day, err)
		}

		row := contract.ExportRow{
			Date:           date,
			AuditorSurname: auditorName(e, teams, teamByID),
			Shift:          e.Shift,
			MachineName:    e.MachineID,
			Technology:     rotation.Classify(e.MachineID),
			Outcome:        contract.OutcomeLiteral(e.Status),
		}
		if m, ok := machineByID[e.MachineID]; ok {
			row.MachineName = m.DisplayName()
			row.Reparto = m.Reparto
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// auditorName resolves who audited the slot: the team leader for team
// entries, or the leader of the week's coordinating team for coordinator
// entries. Unknown assignees fall back to the raw assignee string so a row
// is never dropped.
func auditorName(e *domain.AuditEntry, teams []domain.Team, teamByID map[string]domain.Team) string {
	if e.Assignee == domain.CoordinatorAssignee {
		if coord, ok := rotation.CoordinatorTeam(e.Week, teams); ok {
			return coord.Leader
		}
		return domain.CoordinatorAssignee
	}
	if t, ok := teamByID[e.Assignee]; ok {
		return t.Leader
	}
	return e.Assignee
}
