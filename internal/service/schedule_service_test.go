package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/service"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleFixture(t *testing.T, machinesPerTeam int) (service.ScheduleService, service.AuditService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	testutil.SeedRoster(t, database, machinesPerTeam)
	rosterRepo := repository.NewSQLiteRosterRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)
	return service.NewScheduleService(rosterRepo, auditRepo), service.NewAuditService(auditRepo)
}

func TestGenerateWeek_Deterministic(t *testing.T) {
	svc, _ := newScheduleFixture(t, 8)
	ctx := context.Background()
	req := contract.WeekScheduleRequest{Week: 7, Shift: domain.ShiftB}

	a, err := svc.GenerateWeek(ctx, req)
	require.NoError(t, err)
	b, err := svc.GenerateWeek(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateWeek_ShapeAndDates(t *testing.T) {
	svc, _ := newScheduleFixture(t, 8)
	resp, err := svc.GenerateWeek(context.Background(), contract.WeekScheduleRequest{Week: 1, Shift: domain.ShiftA})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), resp.Monday)
	assert.Equal(t, time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC), resp.Saturday)

	require.Len(t, resp.Teams, 3)
	for _, ts := range resp.Teams {
		require.Len(t, ts.Slots, domain.DaysPerWeek, "team %s", ts.Team.ID)
		for d, slot := range ts.Slots {
			assert.Equal(t, d, slot.Day)
			assert.Equal(t, resp.Monday.AddDate(0, 0, d), slot.Date)
			assert.Equal(t, ts.Team.Reparto, slot.Machine.Reparto, "machines come from the team's own pool")
			assert.Equal(t, domain.StatusUnset, slot.Status)
		}
	}

	require.NotNil(t, resp.CoordinatorTeam)
	assert.Equal(t, "T1", resp.CoordinatorTeam.ID, "week 1 coordinator is the first team")
	require.Len(t, resp.CoordinatorSlots, domain.DaysPerWeek)
}

func TestGenerateWeek_CoordinatorRotationCycle(t *testing.T) {
	svc, _ := newScheduleFixture(t, 4)
	ctx := context.Background()
	want := map[int]string{1: "T1", 2: "T2", 3: "T3", 4: "T1"}
	for week, teamID := range want {
		for _, shift := range domain.AllShifts {
			resp, err := svc.GenerateWeek(ctx, contract.WeekScheduleRequest{Week: week, Shift: shift})
			require.NoError(t, err)
			require.NotNil(t, resp.CoordinatorTeam)
			assert.Equal(t, teamID, resp.CoordinatorTeam.ID, "week %d shift %s", week, shift)
		}
	}
}

func TestGenerateWeek_MergesRecordedStatuses(t *testing.T) {
	svc, audits := newScheduleFixture(t, 8)
	ctx := context.Background()
	req := contract.WeekScheduleRequest{Week: 2, Shift: domain.ShiftC}

	first, err := svc.GenerateWeek(ctx, req)
	require.NoError(t, err)
	slot := first.Teams[0].Slots[3]
	key := domain.AuditKey{
		Shift: req.Shift, Week: req.Week,
		Assignee: first.Teams[0].Team.ID, Day: slot.Day, MachineID: slot.Machine.ID,
	}
	require.NoError(t, audits.SetStatus(ctx, key, domain.StatusFail))

	resp, err := svc.GenerateWeek(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFail, resp.Teams[0].Slots[3].Status)
	assert.Equal(t, slot.Machine, resp.Teams[0].Slots[3].Machine, "overlay must not perturb the generator")
	assert.Equal(t, domain.StatusUnset, resp.Teams[0].Slots[4].Status)
}

func TestGenerateWeek_InvalidArguments(t *testing.T) {
	svc, _ := newScheduleFixture(t, 4)
	ctx := context.Background()

	for _, week := range []int{0, -3, 53} {
		_, err := svc.GenerateWeek(ctx, contract.WeekScheduleRequest{Week: week, Shift: domain.ShiftA})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "week %d", week)
	}

	_, err := svc.GenerateWeek(ctx, contract.WeekScheduleRequest{Week: 1, Shift: "E"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerateWeek_EmptyRoster(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewScheduleService(
		repository.NewSQLiteRosterRepo(database),
		repository.NewSQLiteAuditRepo(database),
	)

	resp, err := svc.GenerateWeek(context.Background(), contract.WeekScheduleRequest{Week: 10, Shift: domain.ShiftD})
	require.NoError(t, err, "empty pools are a valid state, not an error")
	assert.Empty(t, resp.Teams)
	assert.Nil(t, resp.CoordinatorTeam)
	assert.Empty(t, resp.CoordinatorSlots)
}
