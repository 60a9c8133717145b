package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRepo_CreateAndGetLatest(t *testing.T) {
	repo := NewSQLiteRunRepo(openRepoDB(t))
	ctx := context.Background()

	first := &RunRecord{
		Year:            2026,
		CreatedAt:       time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		NarrativeSource: "template",
		ResultJSON:      []byte(`{"gap_analysis":[]}`),
	}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &RunRecord{
		Year:            2026,
		CreatedAt:       time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		NarrativeSource: "llm",
		ResultJSON:      []byte(`{"gap_analysis":[{}]}`),
	}
	require.NoError(t, repo.Create(ctx, second))

	latest, err := repo.GetLatest(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "llm", latest.NarrativeSource)
	assert.JSONEq(t, `{"gap_analysis":[{}]}`, string(latest.ResultJSON))
}

func TestRunRepo_GetLatestMissing(t *testing.T) {
	repo := NewSQLiteRunRepo(openRepoDB(t))
	_, err := repo.GetLatest(context.Background(), 2031)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLiteRunRepo(openRepoDB(t))
	ctx := context.Background()

	for month := 1; month <= 3; month++ {
		require.NoError(t, repo.Create(ctx, &RunRecord{
			Year:       2026,
			CreatedAt:  time.Date(2026, time.Month(month), 1, 9, 0, 0, 0, time.UTC),
			ResultJSON: []byte(`{}`),
		}))
	}
	// A different year stays out of the listing.
	require.NoError(t, repo.Create(ctx, &RunRecord{Year: 2025, ResultJSON: []byte(`{}`)}))

	runs, err := repo.List(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, time.March, runs[0].CreatedAt.Month())
	assert.Equal(t, time.January, runs[2].CreatedAt.Month())
}
