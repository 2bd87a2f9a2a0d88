package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
)

// NewTestTeams returns the standard three-team roster used across tests.
// Order matters: it drives the coordinator rotation cycle.
func NewTestTeams() []domain.Team {
	return []domain.Team{
		{ID: "T1", Label: "Turni 1", Reparto: "REP-A", Leader: "Bianchi"},
		{ID: "T2", Label: "Turni 2", Reparto: "REP-B", Leader: "Ferrari"},
		{ID: "T3", Label: "Turni 3", Reparto: "REP-C", Leader: "Russo"},
	}
}

// NewTestMachines builds n machines per team reparto, with ids carrying a
// classifiable prefix per reparto (DRA, FRW, SLA).
func NewTestMachines(perTeam int) []domain.Machine {
	prefixes := map[string]string{"REP-A": "DRA", "REP-B": "FRW", "REP-C": "SLA"}
	var out []domain.Machine
	for _, reparto := range []string{"REP-A", "REP-B", "REP-C"} {
		for i := 1; i <= perTeam; i++ {
			id := fmt.Sprintf("%s%02d", prefixes[reparto], i)
			out = append(out, domain.Machine{ID: id, Name: id, Reparto: reparto, MinStaff: 1})
		}
	}
	return out
}

// SeedRoster writes the standard roster into the test database.
func SeedRoster(t *testing.T, database *sql.DB, machinesPerTeam int) ([]domain.Team, []domain.Machine) {
	t.Helper()
	teams := NewTestTeams()
	machines := NewTestMachines(machinesPerTeam)
	repo := repository.NewSQLiteRosterRepo(database)
	if err := repo.Replace(context.Background(), teams, machines); err != nil {
		t.Fatalf("seeding roster: %v", err)
	}
	return teams, machines
}

// NewTestKey builds an audit slot coordinate with sane defaults.
func NewTestKey(week int, assignee, machineID string) domain.AuditKey {
	return domain.AuditKey{
		Shift:     domain.ShiftA,
		Week:      week,
		Assignee:  assignee,
		Day:       0,
		MachineID: machineID,
	}
}
