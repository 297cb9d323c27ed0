// Package pipeline provides the high-level orchestration for scoring one
// upload batch of resumes against one job role.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrJobNotFound is the batch-level precondition failure: the job role does
// not exist, so the whole batch is rejected before any document is processed.
var ErrJobNotFound = errors.New("job role not found")

// DefaultWorkers bounds how many documents are parsed and scored at once.
const DefaultWorkers = 4

// JobStore is the narrow read contract the coordinator needs. GetJobByID
// returns an error wrapping ErrJobNotFound when the role does not exist.
type JobStore interface {
	GetJobByID(ctx context.Context, id uuid.UUID) (*types.JobRole, error)
}

// ResultStore is the narrow write contract for persisting screening output.
type ResultStore interface {
	SaveResult(ctx context.Context, result *types.ScreeningResult) error
	SaveBatch(ctx context.Context, batch *types.Batch) error
}

// ResumeError records a per-document failure, tagged with the originating
// filename. It occupies the failed document's slot in the batch output.
type ResumeError struct {
	Filename string `json:"filename"`
	Err      error  `json:"-"`
}

func (e *ResumeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *ResumeError) Unwrap() error { return e.Err }

// Item is one slot of a batch outcome: either a result or a per-resume error.
type Item struct {
	Result *types.ScreeningResult
	Err    *ResumeError
}

// BatchOutcome collects everything produced by one ProcessBatch call. Items
// preserve the input document order.
type BatchOutcome struct {
	BatchID  uuid.UUID
	JobID    uuid.UUID
	JobTitle string
	Items    []Item
}

// Results returns the successful items in input order.
func (o *BatchOutcome) Results() []*types.ScreeningResult {
	out := make([]*types.ScreeningResult, 0, len(o.Items))
	for _, item := range o.Items {
		if item.Result != nil {
			out = append(out, item.Result)
		}
	}
	return out
}

// Errors returns the failed items in input order.
func (o *BatchOutcome) Errors() []*ResumeError {
	out := make([]*ResumeError, 0)
	for _, item := range o.Items {
		if item.Err != nil {
			out = append(out, item.Err)
		}
	}
	return out
}

// Options tunes a Coordinator.
type Options struct {
	// Workers bounds concurrent per-document work. Zero means DefaultWorkers.
	Workers int
	// Weights is the scoring policy. Zero value means scoring.DefaultWeights.
	Weights scoring.Weights
}

// Coordinator runs the extract-normalize-match-score pipeline over every
// document of a batch. Documents are independent: one failure never aborts
// the rest.
type Coordinator struct {
	jobs    JobStore
	results ResultStore
	weights scoring.Weights
	workers int
}

// New creates a Coordinator over the given stores.
func New(jobs JobStore, results ResultStore, opts Options) *Coordinator {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	return &Coordinator{
		jobs:    jobs,
		results: results,
		weights: weights,
		workers: workers,
	}
}

// ProcessBatch scores every document against the job role identified by
// jobID. The role is resolved once and treated as a stable snapshot for the
// whole batch. Per-document failures are recorded in their slot; only a
// missing job role fails the batch, and it does so before any document is
// touched. Completed results are persisted as they finish, so a cancelled
// batch retains what it already produced.
func (c *Coordinator) ProcessBatch(ctx context.Context, jobID uuid.UUID, docs []types.ResumeDocument) (*BatchOutcome, error) {
	job, err := c.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("resolving job %s: %w", jobID, err)
	}

	outcome := &BatchOutcome{
		BatchID:  uuid.New(),
		JobID:    job.ID,
		JobTitle: job.Title,
		Items:    make([]Item, len(docs)),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i := range docs {
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			doc := docs[i]
			result, docErr := c.processDocument(gCtx, outcome.BatchID, job, doc)
			if docErr != nil {
				log.Printf("[batch %s] document %q failed for job %s: %v",
					outcome.BatchID, doc.Filename, job.ID, docErr)
				outcome.Items[i] = Item{Err: &ResumeError{Filename: doc.Filename, Err: docErr}}
				return nil
			}
			outcome.Items[i] = Item{Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Only context cancellation reaches here; per-document failures are
		// recorded in their slots. Results saved so far are retained.
		return nil, err
	}

	batch := &types.Batch{
		ID:        outcome.BatchID,
		JobID:     job.ID,
		CreatedAt: time.Now().UTC(),
	}
	for _, r := range outcome.Results() {
		batch.ResultIDs = append(batch.ResultIDs, r.ID)
	}
	if err := c.results.SaveBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("saving batch %s: %w", batch.ID, err)
	}

	return outcome, nil
}

// processDocument runs extraction, field heuristics, and scoring for one
// document, and persists the result. An unexpected panic while scoring is
// contained to this document's slot.
func (c *Coordinator) processDocument(ctx context.Context, batchID uuid.UUID, job *types.JobRole, doc types.ResumeDocument) (result *types.ScreeningResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal processing error: %v", r)
		}
	}()

	rawText, err := extraction.Extract(doc.Data, doc.Format)
	if err != nil {
		return nil, err
	}

	contact := fields.ExtractAll(rawText)
	profile := &types.ExtractedProfile{
		RawText: rawText,
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		College: contact.College,
	}

	outcome := scoring.Score(profile, job, c.weights)

	result = &types.ScreeningResult{
		ID:            uuid.New(),
		BatchID:       batchID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Filename:      doc.Filename,
		Name:          profile.Name,
		Email:         profile.Email,
		Phone:         profile.Phone,
		College:       profile.College,
		Skills:        outcome.ResumeSkills,
		MatchedSkills: outcome.MatchedSkills,
		Score:         outcome.Score,
		CreatedAt:     time.Now().UTC(),
	}

	if err := c.results.SaveResult(ctx, result); err != nil {
		return nil, fmt.Errorf("saving result for %q: %w", doc.Filename, err)
	}
	return result, nil
}
