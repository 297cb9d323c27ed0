package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

type resultsResponse struct {
	Results []struct {
		types.ScreeningResult
		Band string `json:"band"`
	} `json:"results"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func seedResults(t *testing.T, store *db.MemoryStore, job *types.JobRole, scores ...int) uuid.UUID {
	t.Helper()
	batchID := uuid.New()
	now := time.Now().UTC()
	for i, score := range scores {
		require.NoError(t, store.SaveResult(context.Background(), &types.ScreeningResult{
			ID:        uuid.New(),
			BatchID:   batchID,
			JobID:     job.ID,
			JobTitle:  job.Title,
			Filename:  fmt.Sprintf("cand-%02d.pdf", i),
			Name:      fmt.Sprintf("Candidate %02d", i),
			Email:     fmt.Sprintf("cand%02d@example.com", i),
			Score:     score,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, store.SaveBatch(context.Background(), &types.Batch{
		ID: batchID, JobID: job.ID, CreatedAt: now,
	}))
	return batchID
}

func TestListResults_DefaultSortAndBand(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Analyst", "Excel")
	seedResults(t, store, job, 30, 85, 55)

	rec := doRequest(s, httptest.NewRequest("GET", "/api/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resultsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)

	assert.Equal(t, 85, resp.Results[0].Score)
	assert.Equal(t, types.BandHigh, resp.Results[0].Band)
	assert.Equal(t, types.BandMedium, resp.Results[1].Band)
	assert.Equal(t, types.BandRejected, resp.Results[2].Band)
}

func TestListResults_FilterByJobAndBatch(t *testing.T) {
	s, store := newTestServer(t)
	jobA := seedJob(t, store, "A", "Go")
	jobB := seedJob(t, store, "B", "Rust")
	batchA := seedResults(t, store, jobA, 50, 60)
	seedResults(t, store, jobB, 70)

	rec := doRequest(s, httptest.NewRequest("GET", "/api/results?job="+jobA.ID.String(), nil))
	var resp resultsResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Total)

	rec = doRequest(s, httptest.NewRequest("GET", "/api/results?batch="+batchA.String(), nil))
	decodeBody(t, rec, &resp)
	assert.Equal(t, 2, resp.Total)

	rec = doRequest(s, httptest.NewRequest("GET", "/api/results?job=oops", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListResults_SearchSortPagination(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Analyst", "Excel")
	seedResults(t, store, job, 10, 20, 30, 40, 50)

	rec := doRequest(s, httptest.NewRequest("GET", "/api/results?search=cand-03", nil))
	var resp resultsResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "cand-03.pdf", resp.Results[0].Filename)

	rec = doRequest(s, httptest.NewRequest("GET", "/api/results?sortBy=score&sortDir=asc&limit=2&page=2", nil))
	decodeBody(t, rec, &resp)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 30, resp.Results[0].Score)
	assert.Equal(t, 40, resp.Results[1].Score)

	rec = doRequest(s, httptest.NewRequest("GET", "/api/results?page=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doRequest(s, httptest.NewRequest("GET", "/api/results?limit=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Analyst", "Excel")
	seedResults(t, store, job, 80, 50, 20)

	rec := doRequest(s, httptest.NewRequest("GET", "/api/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats db.Stats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 1, stats.TotalJobs)
	assert.Equal(t, 3, stats.TotalResults)
	assert.Equal(t, 1, stats.TotalBatches)
	assert.InDelta(t, 50.0, stats.AverageScore, 1e-9)
	assert.Equal(t, 1, stats.HighCount)
}
