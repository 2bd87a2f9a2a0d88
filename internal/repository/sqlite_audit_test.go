package repository_test

import (
	"context"
	"testing"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)
	ctx := context.Background()

	key := testutil.NewTestKey(3, "T1", "DRA01")
	err := repo.Upsert(ctx, &domain.AuditEntry{AuditKey: key, Status: domain.StatusPass})
	require.NoError(t, err)

	status, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPass, status)
}

func TestAuditRepo_MissingKeyReadsUnset(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)

	status, err := repo.Get(context.Background(), testutil.NewTestKey(1, "T1", "DRA01"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnset, status)
}

func TestAuditRepo_UpsertIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)
	ctx := context.Background()

	key := testutil.NewTestKey(5, "T2", "FRW01")
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: key, Status: domain.StatusFail}))
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: key, Status: domain.StatusFail}))

	entries, err := repo.ListByShift(ctx, domain.ShiftA)
	require.NoError(t, err)
	require.Len(t, entries, 1, "same coordinate must stay one row")
	assert.Equal(t, domain.StatusFail, entries[0].Status)
}

func TestAuditRepo_LastWriteWins(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)
	ctx := context.Background()

	key := testutil.NewTestKey(5, "T2", "FRW01")
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: key, Status: domain.StatusPass}))
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: key, Status: domain.StatusAbsent}))

	status, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAbsent, status)
}

func TestAuditRepo_ListByShiftIsPartitioned(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)
	ctx := context.Background()

	keyA := testutil.NewTestKey(1, "T1", "DRA01")
	keyB := keyA
	keyB.Shift = domain.ShiftB
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: keyA, Status: domain.StatusPass}))
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: keyB, Status: domain.StatusFail}))

	entries, err := repo.ListByShift(ctx, domain.ShiftA)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ShiftA, entries[0].Shift)
	assert.Equal(t, domain.StatusPass, entries[0].Status)
}

func TestAuditRepo_DeleteByShift(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAuditRepo(database)
	ctx := context.Background()

	keyA := testutil.NewTestKey(1, "T1", "DRA01")
	keyB := keyA
	keyB.Shift = domain.ShiftB
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: keyA, Status: domain.StatusPass}))
	require.NoError(t, repo.Upsert(ctx, &domain.AuditEntry{AuditKey: keyB, Status: domain.StatusPass}))

	require.NoError(t, repo.DeleteByShift(ctx, domain.ShiftA))

	entries, err := repo.ListByShift(ctx, domain.ShiftA)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = repo.ListByShift(ctx, domain.ShiftB)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "other shifts must be untouched")

	// Clearing an already-empty shift succeeds silently.
	require.NoError(t, repo.DeleteByShift(ctx, domain.ShiftA))
}
