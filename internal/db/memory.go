package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// MemoryStore keeps jobs, results, and batches in process memory. It mirrors
// the PostgreSQL store's behavior, including filter, sort, and pagination
// semantics, and is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	jobs    map[uuid.UUID]types.JobRole
	results []types.ScreeningResult
	batches map[uuid.UUID]types.Batch
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:    make(map[uuid.UUID]types.JobRole),
		batches: make(map[uuid.UUID]types.Batch),
	}
}

// CreateJob inserts a job role.
func (m *MemoryStore) CreateJob(_ context.Context, job *types.JobRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	m.jobs[job.ID] = *job
	return nil
}

// GetJobByID retrieves a job role, reporting pipeline.ErrJobNotFound when it
// does not exist.
func (m *MemoryStore) GetJobByID(_ context.Context, id uuid.UUID) (*types.JobRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, pipeline.ErrJobNotFound)
	}
	return &job, nil
}

// ListJobs retrieves all job roles, newest first.
func (m *MemoryStore) ListJobs(_ context.Context) ([]types.JobRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jobs := make([]types.JobRole, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		}
		return jobs[i].ID.String() < jobs[j].ID.String()
	})
	return jobs, nil
}

// UpdateJob replaces the mutable fields of a job role.
func (m *MemoryStore) UpdateJob(_ context.Context, job *types.JobRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.jobs[job.ID]
	if !ok {
		return fmt.Errorf("job %s: %w", job.ID, pipeline.ErrJobNotFound)
	}
	updated := *job
	updated.CreatedAt = current.CreatedAt
	m.jobs[job.ID] = updated
	return nil
}

// DeleteJob removes a job role together with its results and batches.
func (m *MemoryStore) DeleteJob(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return fmt.Errorf("job %s: %w", id, pipeline.ErrJobNotFound)
	}
	delete(m.jobs, id)

	kept := m.results[:0]
	for _, r := range m.results {
		if r.JobID != id {
			kept = append(kept, r)
		}
	}
	m.results = kept
	for batchID, batch := range m.batches {
		if batch.JobID == id {
			delete(m.batches, batchID)
		}
	}
	return nil
}

// SaveResult inserts one screening result.
func (m *MemoryStore) SaveResult(_ context.Context, result *types.ScreeningResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, *result)
	return nil
}

// SaveBatch inserts one batch record.
func (m *MemoryStore) SaveBatch(_ context.Context, batch *types.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches[batch.ID] = *batch
	return nil
}

// ListResults retrieves one page of results plus the total count matching
// the filters, with the same ordering guarantees as the SQL store.
func (m *MemoryStore) ListResults(_ context.Context, filters ResultFilters) ([]types.ScreeningResult, int, error) {
	filters = filters.normalized()

	m.mu.RLock()
	matched := make([]types.ScreeningResult, 0, len(m.results))
	for _, r := range m.results {
		if filters.JobID != uuid.Nil && r.JobID != filters.JobID {
			continue
		}
		if filters.BatchID != uuid.Nil && r.BatchID != filters.BatchID {
			continue
		}
		if filters.Search != "" && !matchesSearch(r, filters.Search) {
			continue
		}
		matched = append(matched, r)
	}
	m.mu.RUnlock()

	sortResults(matched, filters.SortBy, filters.SortDir)

	total := len(matched)
	start := (filters.Page - 1) * filters.Limit
	if start >= total {
		return []types.ScreeningResult{}, total, nil
	}
	end := start + filters.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesSearch(r types.ScreeningResult, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Email), needle) ||
		strings.Contains(strings.ToLower(r.Filename), needle)
}

func sortResults(results []types.ScreeningResult, sortBy, sortDir string) {
	asc := sortDir == "asc"
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		var less, equal bool
		switch sortBy {
		case "name":
			less, equal = a.Name < b.Name, a.Name == b.Name
		case "createdAt":
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		default: // score
			less, equal = a.Score < b.Score, a.Score == b.Score
		}
		if !equal {
			if asc {
				return less
			}
			return !less
		}
		// Tie-break like the SQL store: created_at DESC, then id.
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// GetStats computes aggregate counts and the mean score across all results.
func (m *MemoryStore) GetStats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := &Stats{
		TotalJobs:    len(m.jobs),
		TotalResults: len(m.results),
		TotalBatches: len(m.batches),
	}
	if len(m.results) == 0 {
		return s, nil
	}

	sum := 0
	for _, r := range m.results {
		sum += r.Score
		switch types.BandForScore(r.Score) {
		case types.BandHigh:
			s.HighCount++
		case types.BandMedium:
			s.MediumCount++
		default:
			s.RejectedCount++
		}
	}
	s.AverageScore = float64(sum) / float64(len(m.results))
	return s, nil
}
