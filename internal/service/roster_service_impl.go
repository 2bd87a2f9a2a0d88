package service

import (
	"context"
	"fmt"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/db"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/roster"
)

type rosterService struct {
	roster repository.RosterRepo
	uow    db.UnitOfWork
}

// NewRosterService creates the roster manager. Imports replace the whole
// roster inside one transaction so a failed import never leaves the tables
// half-written.
func NewRosterService(rosterRepo repository.RosterRepo, uow db.UnitOfWork) RosterService {
	return &rosterService{roster: rosterRepo, uow: uow}
}

func (s *rosterService) Import(ctx context.Context, filePath string) (*RosterImportResult, error) {
	loaded, err := roster.Load(filePath)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRosterRepo(tx).Replace(ctx, loaded.Teams, loaded.Machines)
	})
	if err != nil {
		return nil, fmt.Errorf("replacing roster: %w", err)
	}

	return &RosterImportResult{
		TeamCount:    len(loaded.Teams),
		MachineCount: len(loaded.Machines),
	}, nil
}

func (s *rosterService) List(ctx context.Context) ([]domain.Team, []domain.Machine, error) {
	teams, err := s.roster.ListTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading teams: %w", err)
	}
	machines, err := s.roster.ListMachines(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading machines: %w", err)
	}
	return teams, machines, nil
}
