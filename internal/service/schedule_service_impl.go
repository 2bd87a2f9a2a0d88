package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/calendar"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/rotation"
)

type scheduleService struct {
	roster repository.RosterRepo
	audits repository.AuditStatusRepo
}

// NewScheduleService creates the week plan generator over the given roster
// and overlay stores.
func NewScheduleService(roster repository.RosterRepo, audits repository.AuditStatusRepo) ScheduleService {
	return &scheduleService{roster: roster, audits: audits}
}

func (s *scheduleService) GenerateWeek(ctx context.Context, req contract.WeekScheduleRequest) (*contract.WeekScheduleResponse, error) {
	if err := domain.ValidateWeek(req.Week); err != nil {
		return nil, err
	}
	if !req.Shift.Valid() {
		return nil, fmt.Errorf("shift %q: %w", req.Shift, domain.ErrInvalidArgument)
	}

	monday, saturday, err := calendar.WeekRange(req.Week)
	if err != nil {
		return nil, err
	}

	teams, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	machines, err := s.roster.ListMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading machines: %w", err)
	}

	pools, global := machinePools(teams, machines)
	ws := rotation.GenerateWeek(req.Week, req.Shift, pools, global)

	statuses, err := s.weekStatuses(ctx, req.Shift, req.Week)
	if err != nil {
		return nil, err
	}

	resp := &contract.WeekScheduleResponse{
		Week:     req.Week,
		Shift:    req.Shift,
		Monday:   monday,
		Saturday: saturday,
	}

	for _, team := range teams {
		resp.Teams = append(resp.Teams, contract.TeamSchedule{
			Team:  team,
			Slots: mergeSlots(ws.Teams[team.ID], team.ID, req, monday, statuses),
		})
	}

	if coord, ok := rotation.CoordinatorTeam(req.Week, teams); ok {
		resp.CoordinatorTeam = &coord
	}
	resp.CoordinatorSlots = mergeSlots(ws.Coordinator, domain.CoordinatorAssignee, req, monday, statuses)

	return resp, nil
}

// weekStatuses loads the overlay entries for one (shift, week) keyed by slot
// coordinate.
func (s *scheduleService) weekStatuses(ctx context.Context, shift domain.Shift, week int) (map[domain.AuditKey]domain.AuditStatus, error) {
	entries, err := s.audits.ListByShift(ctx, shift)
	if err != nil {
		return nil, fmt.Errorf("loading recorded statuses: %w", err)
	}
	statuses := make(map[domain.AuditKey]domain.AuditStatus)
	for _, e := range entries {
		if e.Week == week {
			statuses[e.AuditKey] = e.Status
		}
	}
	return statuses, nil
}

// machinePools splits the plant machine list into per-team pools keyed by
// team id, plus the global pool of every machine owned by some team.
func machinePools(teams []domain.Team, machines []domain.Machine) (map[string][]domain.Machine, []domain.Machine) {
	repartoTeam := make(map[string]string, len(teams))
	for _, t := range teams {
		repartoTeam[t.Reparto] = t.ID
	}

	pools := make(map[string][]domain.Machine, len(teams))
	var global []domain.Machine
	for _, m := range machines {
		teamID, owned := repartoTeam[m.Reparto]
		if !owned {
			continue
		}
		pools[teamID] = append(pools[teamID], m)
		global = append(global, m)
	}
	return pools, global
}

// mergeSlots joins generated slots with their recorded statuses. The
// generator output is untouched by the overlay: a status only decorates the
// slot it was recorded for.
func mergeSlots(slots []rotation.Slot, assignee string, req contract.WeekScheduleRequest, monday time.Time, statuses map[domain.AuditKey]domain.AuditStatus) []contract.ScheduledSlot {
	if len(slots) == 0 {
		return nil
	}
	out := make([]contract.ScheduledSlot, 0, len(slots))
	for _, slot := range slots {
		key := domain.AuditKey{
			Shift:     req.Shift,
			Week:      req.Week,
			Assignee:  assignee,
			Day:       slot.Day,
			MachineID: slot.Machine.ID,
		}
		status, ok := statuses[key]
		if !ok {
			status = domain.StatusUnset
		}
		out = append(out, contract.ScheduledSlot{
			Day:        slot.Day,
			Date:       monday.AddDate(0, 0, slot.Day),
			Machine:    slot.Machine,
			Technology: slot.Technology,
			Status:     status,
		})
	}
	return out
}
