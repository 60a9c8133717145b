package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
)

func openRepoDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func sampleAnnualTarget() domain.AnnualTarget {
	return domain.AnnualTarget{
		VILTSessions:  500,
		ILTSessions:   200,
		LearningHours: 10000,
		CompetencyHours: map[string]float64{
			"technical":   6000,
			"soft_skills": 2000,
		},
	}
}

func TestTargetRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteTargetRepo(openRepoDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 2026, sampleAnnualTarget()))

	got, err := repo.GetByYear(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 500, got.VILTSessions)
	assert.Equal(t, 200, got.ILTSessions)
	assert.InDelta(t, 10000, got.LearningHours, 1e-9)
	assert.InDelta(t, 6000, got.CompetencyHours["technical"], 1e-9)
	assert.Len(t, got.CompetencyHours, 2)
}

func TestTargetRepo_UpsertReplacesCompetencyAreas(t *testing.T) {
	repo := NewSQLiteTargetRepo(openRepoDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 2026, sampleAnnualTarget()))

	revised := sampleAnnualTarget()
	revised.CompetencyHours = map[string]float64{"leadership": 3000}
	require.NoError(t, repo.Upsert(ctx, 2026, revised))

	got, err := repo.GetByYear(ctx, 2026)
	require.NoError(t, err)
	assert.Len(t, got.CompetencyHours, 1)
	assert.InDelta(t, 3000, got.CompetencyHours["leadership"], 1e-9)
}

func TestTargetRepo_RejectsInvalidTarget(t *testing.T) {
	repo := NewSQLiteTargetRepo(openRepoDB(t))

	bad := sampleAnnualTarget()
	bad.VILTSessions = -1
	err := repo.Upsert(context.Background(), 2026, bad)
	var terr *domain.InvalidTargetError
	assert.ErrorAs(t, err, &terr)
}

func TestTargetRepo_GetMissingYear(t *testing.T) {
	repo := NewSQLiteTargetRepo(openRepoDB(t))
	_, err := repo.GetByYear(context.Background(), 2030)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTargetRepo_ListYearsAndDelete(t *testing.T) {
	repo := NewSQLiteTargetRepo(openRepoDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 2027, sampleAnnualTarget()))
	require.NoError(t, repo.Upsert(ctx, 2026, sampleAnnualTarget()))

	years, err := repo.ListYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2026, 2027}, years)

	require.NoError(t, repo.Delete(ctx, 2026))
	years, err = repo.ListYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2027}, years)
}
