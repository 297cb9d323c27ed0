package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// CreateJob inserts a job role.
func (db *DB) CreateJob(ctx context.Context, job *types.JobRole) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, department, location, description, requirements, skills, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		job.ID, job.Title, job.Department, job.Location,
		job.Description, job.Requirements, job.Skills, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJobByID retrieves a job role. A missing role is reported as
// pipeline.ErrJobNotFound so callers can fail a batch before processing.
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*types.JobRole, error) {
	var job types.JobRole
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, department, location, description, requirements, skills, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Department, &job.Location,
		&job.Description, &job.Requirements, &job.Skills, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", id, pipeline.ErrJobNotFound)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs retrieves all job roles, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]types.JobRole, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, department, location, description, requirements, skills, created_at
		 FROM jobs ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobRole
	for rows.Next() {
		var job types.JobRole
		if err := rows.Scan(&job.ID, &job.Title, &job.Department, &job.Location,
			&job.Description, &job.Requirements, &job.Skills, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateJob replaces the mutable fields of a job role.
func (db *DB) UpdateJob(ctx context.Context, job *types.JobRole) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, department = $2, location = $3,
		 description = $4, requirements = $5, skills = $6 WHERE id = $7`,
		job.Title, job.Department, job.Location,
		job.Description, job.Requirements, job.Skills, job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", job.ID, pipeline.ErrJobNotFound)
	}
	return nil
}

// DeleteJob removes a job role and, via cascade, its results and batches.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, pipeline.ErrJobNotFound)
	}
	return nil
}
