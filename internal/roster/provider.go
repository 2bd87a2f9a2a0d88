package roster

import (
	"context"
	"fmt"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
)

// FileProvider serves a loaded roster file through the RosterRepo interface.
type FileProvider struct {
	teams    []domain.Team
	machines []domain.Machine
	byID     map[string]domain.Machine
}

var _ repository.RosterRepo = (*FileProvider)(nil)

// NewFileProvider wraps a loaded roster.
func NewFileProvider(r *Roster) *FileProvider {
	byID := make(map[string]domain.Machine, len(r.Machines))
	for _, m := range r.Machines {
		byID[m.ID] = m
	}
	return &FileProvider{teams: r.Teams, machines: r.Machines, byID: byID}
}

func (p *FileProvider) ListTeams(ctx context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, len(p.teams))
	copy(out, p.teams)
	return out, nil
}

func (p *FileProvider) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	out := make([]domain.Machine, len(p.machines))
	copy(out, p.machines)
	return out, nil
}

func (p *FileProvider) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	m, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("machine %s: %w", id, repository.ErrNotFound)
	}
	return &m, nil
}
