package service_test

import (
	"context"
	"testing"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/contract"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/service"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportFixture(t *testing.T) (service.ExportService, service.AuditService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	testutil.SeedRoster(t, database, 4)
	rosterRepo := repository.NewSQLiteRosterRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)
	return service.NewExportService(rosterRepo, auditRepo), service.NewAuditService(auditRepo)
}

func TestBuildExport_RowMapping(t *testing.T) {
	export, audits := newExportFixture(t)
	ctx := context.Background()

	key := domain.AuditKey{Shift: domain.ShiftA, Week: 2, Assignee: "T1", Day: 5, MachineID: "DRA01"}
	require.NoError(t, audits.SetStatus(ctx, key, domain.StatusPass))

	rows, err := export.BuildExport(ctx, domain.ShiftA)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "10/01/2026", row.Date.Format(contract.ExportDateLayout), "week 2 Saturday")
	assert.Empty(t, row.BadgeNumber)
	assert.Equal(t, "Bianchi", row.AuditorSurname, "team entries carry the team leader")
	assert.Empty(t, row.AuditorFirstName)
	assert.Equal(t, domain.ShiftA, row.Shift)
	assert.Equal(t, "DRA01", row.MachineName)
	assert.Equal(t, "REP-A", row.Reparto)
	assert.Equal(t, domain.TechTurning, row.Technology)
	assert.Equal(t, "Sì", row.Outcome)
}

func TestBuildExport_OutcomeLiterals(t *testing.T) {
	export, audits := newExportFixture(t)
	ctx := context.Background()

	statuses := map[string]domain.AuditStatus{
		"DRA01": domain.StatusPass,
		"DRA02": domain.StatusFail,
		"DRA03": domain.StatusAbsent,
		"DRA04": domain.StatusUnset,
	}
	day := 0
	for machineID, status := range statuses {
		key := domain.AuditKey{Shift: domain.ShiftB, Week: 1, Assignee: "T1", Day: day, MachineID: machineID}
		require.NoError(t, audits.SetStatus(ctx, key, status))
		day++
	}

	rows, err := export.BuildExport(ctx, domain.ShiftB)
	require.NoError(t, err)
	require.Len(t, rows, 4, "unset rows are produced too; filtering is the caller's concern")

	byMachine := make(map[string]string)
	for _, row := range rows {
		byMachine[row.MachineName] = row.Outcome
	}
	assert.Equal(t, "Sì", byMachine["DRA01"])
	assert.Equal(t, "No", byMachine["DRA02"])
	assert.Equal(t, "A", byMachine["DRA03"])
	assert.Equal(t, "", byMachine["DRA04"])
}

func TestBuildExport_CoordinatorAuditor(t *testing.T) {
	export, audits := newExportFixture(t)
	ctx := context.Background()

	// Week 2's coordinating team is T2, led by Ferrari.
	key := domain.AuditKey{Shift: domain.ShiftC, Week: 2, Assignee: domain.CoordinatorAssignee, Day: 1, MachineID: "SLA01"}
	require.NoError(t, audits.SetStatus(ctx, key, domain.StatusFail))

	rows, err := export.BuildExport(ctx, domain.ShiftC)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ferrari", rows[0].AuditorSurname)
	assert.Equal(t, domain.TechGrinding, rows[0].Technology)
}

func TestBuildExport_UnknownMachineFallsBack(t *testing.T) {
	export, audits := newExportFixture(t)
	ctx := context.Background()

	key := domain.AuditKey{Shift: domain.ShiftD, Week: 3, Assignee: "T3", Day: 2, MachineID: "GHOST9"}
	require.NoError(t, audits.SetStatus(ctx, key, domain.StatusPass))

	rows, err := export.BuildExport(ctx, domain.ShiftD)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GHOST9", rows[0].MachineName, "rows are never dropped for stale roster data")
	assert.Equal(t, domain.TechOther, rows[0].Technology)
}

func TestBuildExport_EmptyShift(t *testing.T) {
	export, _ := newExportFixture(t)
	rows, err := export.BuildExport(context.Background(), domain.ShiftA)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
