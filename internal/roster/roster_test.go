package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "roster.yaml"))
	require.NoError(t, err)

	require.Len(t, r.Teams, 3)
	assert.Equal(t, "T1", r.Teams[0].ID, "team order must be preserved")
	assert.Equal(t, "Bianchi", r.Teams[0].Leader)
	assert.Equal(t, "REP-B", r.Teams[1].Reparto)

	require.Len(t, r.Machines, 6)
	assert.Equal(t, "Tornio DRA01", r.Machines[0].Name)
	assert.Equal(t, 2, r.Machines[2].MinStaff)
	assert.Equal(t, 0, r.Machines[3].MinStaff, "min_staff defaults to zero")
	assert.Equal(t, "SCA01", r.Machines[5].Name, "missing name falls back to id")
}

func TestLoad_RejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	body := "teams:\n  - id: T1\n  - id: T1\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoad_RejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noid.yaml")
	body := "machines:\n  - name: orphan\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFileProvider(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "roster.yaml"))
	require.NoError(t, err)
	p := NewFileProvider(r)
	ctx := context.Background()

	teams, err := p.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 3)

	machines, err := p.ListMachines(ctx)
	require.NoError(t, err)
	assert.Len(t, machines, 6)

	m, err := p.GetMachine(ctx, "FRW01")
	require.NoError(t, err)
	assert.Equal(t, "Dentatrice FRW01", m.Name)

	_, err = p.GetMachine(ctx, "NOPE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
