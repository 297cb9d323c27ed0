package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultPageSize bounds result listings when the caller does not set one.
const DefaultPageSize = 20

// MaxPageSize caps how many results one page may carry.
const MaxPageSize = 100

// ResultFilters holds optional filters and ordering for listing results.
type ResultFilters struct {
	JobID   uuid.UUID
	BatchID uuid.UUID
	// Search matches name, email, or filename, case-insensitively.
	Search string
	// SortBy is one of "score", "name", "createdAt". Empty means "score".
	SortBy string
	// SortDir is "asc" or "desc". Empty means "desc".
	SortDir string
	// Page is 1-based. Zero means the first page.
	Page  int
	Limit int
}

// sortColumns whitelists the ORDER BY targets; anything else falls back to
// score so caller input never reaches the query text.
var sortColumns = map[string]string{
	"score":     "score",
	"name":      "name",
	"createdAt": "created_at",
}

func (f ResultFilters) normalized() ResultFilters {
	if _, ok := sortColumns[f.SortBy]; !ok {
		f.SortBy = "score"
	}
	if f.SortDir != "asc" {
		f.SortDir = "desc"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

// SaveResult inserts one screening result.
func (db *DB) SaveResult(ctx context.Context, result *types.ScreeningResult) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO results (id, batch_id, job_id, job_title, filename, name, email,
		 phone, college, skills, matched_skills, score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		result.ID, result.BatchID, result.JobID, result.JobTitle, result.Filename,
		result.Name, result.Email, result.Phone, result.College,
		result.Skills, result.MatchedSkills, result.Score, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for %s: %w", result.Filename, err)
	}
	return nil
}

// SaveBatch inserts one batch record.
func (db *DB) SaveBatch(ctx context.Context, batch *types.Batch) error {
	resultIDs := batch.ResultIDs
	if resultIDs == nil {
		resultIDs = []uuid.UUID{}
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO batches (id, job_id, result_ids, created_at) VALUES ($1, $2, $3, $4)`,
		batch.ID, batch.JobID, resultIDs, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	return nil
}

// ListResults retrieves one page of screening results plus the total count
// matching the filters. Ordering is deterministic: the requested column with
// created_at and id as tie-breakers.
func (db *DB) ListResults(ctx context.Context, filters ResultFilters) ([]types.ScreeningResult, int, error) {
	filters = filters.normalized()

	where := ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobID != uuid.Nil {
		where += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.BatchID != uuid.Nil {
		where += fmt.Sprintf(" AND batch_id = $%d", argNum)
		args = append(args, filters.BatchID)
		argNum++
	}
	if filters.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR filename ILIKE $%d)",
			argNum, argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM results`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count results: %w", err)
	}

	dir := "DESC"
	if filters.SortDir == "asc" {
		dir = "ASC"
	}
	query := `SELECT id, batch_id, job_id, job_title, filename, name, email, phone,
		college, skills, matched_skills, score, created_at FROM results` + where
	query += fmt.Sprintf(" ORDER BY %s %s, created_at DESC, id", sortColumns[filters.SortBy], dir)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []types.ScreeningResult
	for rows.Next() {
		var r types.ScreeningResult
		if err := rows.Scan(&r.ID, &r.BatchID, &r.JobID, &r.JobTitle, &r.Filename,
			&r.Name, &r.Email, &r.Phone, &r.College,
			&r.Skills, &r.MatchedSkills, &r.Score, &r.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, total, nil
}

// Stats summarizes everything the store holds.
type Stats struct {
	TotalJobs     int     `json:"totalJobs"`
	TotalResults  int     `json:"totalResults"`
	TotalBatches  int     `json:"totalBatches"`
	AverageScore  float64 `json:"averageScore"`
	HighCount     int     `json:"highCount"`
	MediumCount   int     `json:"mediumCount"`
	RejectedCount int     `json:"rejectedCount"`
}

// GetStats computes aggregate counts and the mean score across all results.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := db.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM batches),
			COUNT(*),
			COALESCE(AVG(score), 0),
			COUNT(*) FILTER (WHERE score >= %d),
			COUNT(*) FILTER (WHERE score >= %d AND score < %d),
			COUNT(*) FILTER (WHERE score < %d)
		FROM results`,
		types.BandHighFrom, types.BandRejectedBelow, types.BandHighFrom, types.BandRejectedBelow,
	)).Scan(&s.TotalJobs, &s.TotalBatches, &s.TotalResults,
		&s.AverageScore, &s.HighCount, &s.MediumCount, &s.RejectedCount)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &s, nil
}
