package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// connectTestDB connects to the database named by TEST_DATABASE_URL, or
// skips the test when it is not set.
func connectTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background()))
	t.Cleanup(database.Close)
	return database
}

func TestIntegration_JobAndResultRoundTrip(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	job := &types.JobRole{
		ID:           uuid.New(),
		Title:        "Integration Engineer",
		Description:  "Runs the whole stack.",
		Requirements: "Patience.",
		Skills:       []string{"Python", "SQL"},
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, database.CreateJob(ctx, job))
	t.Cleanup(func() { _ = database.DeleteJob(ctx, job.ID) })

	got, err := database.GetJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Title, got.Title)
	assert.Equal(t, job.Skills, got.Skills)

	_, err = database.GetJobByID(ctx, uuid.New())
	assert.ErrorIs(t, err, pipeline.ErrJobNotFound)

	batchID := uuid.New()
	result := &types.ScreeningResult{
		ID:            uuid.New(),
		BatchID:       batchID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Filename:      "it.pdf",
		Name:          "Ida Tester",
		Skills:        []string{"Python"},
		MatchedSkills: []string{"Python"},
		Score:         72,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, database.SaveResult(ctx, result))
	require.NoError(t, database.SaveBatch(ctx, &types.Batch{
		ID: batchID, JobID: job.ID,
		ResultIDs: []uuid.UUID{result.ID},
		CreatedAt: time.Now().UTC(),
	}))

	results, total, err := database.ListResults(ctx, ResultFilters{BatchID: batchID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Ida Tester", results[0].Name)
	assert.Equal(t, []string{"Python"}, results[0].MatchedSkills)

	// Deleting the job cascades to results and batches.
	require.NoError(t, database.DeleteJob(ctx, job.ID))
	_, total, err = database.ListResults(ctx, ResultFilters{BatchID: batchID})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestIntegration_StatsAndFilters(t *testing.T) {
	database := connectTestDB(t)
	ctx := context.Background()

	job := &types.JobRole{
		ID:        uuid.New(),
		Title:     "Stats Role",
		Skills:    []string{"Go"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, database.CreateJob(ctx, job))
	t.Cleanup(func() { _ = database.DeleteJob(ctx, job.ID) })

	batchID := uuid.New()
	for i, score := range []int{80, 50, 20} {
		require.NoError(t, database.SaveResult(ctx, &types.ScreeningResult{
			ID: uuid.New(), BatchID: batchID, JobID: job.ID, JobTitle: job.Title,
			Filename: "f.pdf", Name: "Candidate", Score: score,
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		}))
	}

	results, _, err := database.ListResults(ctx, ResultFilters{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 80, results[0].Score) // score desc by default

	stats, err := database.GetStats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalResults, 3)
	assert.GreaterOrEqual(t, stats.HighCount, 1)
}
