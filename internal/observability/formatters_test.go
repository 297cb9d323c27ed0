package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintJobRole(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRole(&types.JobRole{
		Title:      "Data Engineer",
		Department: "Engineering",
		Skills:     []string{"Python", "SQL", "Airflow", "Spark", "Kafka", "dbt"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB ROLE")
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintJobRole_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobRole(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBatchSummary_RankedByScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := &pipeline.BatchOutcome{
		BatchID:  uuid.New(),
		JobTitle: "Analyst",
		Items: []pipeline.Item{
			{Result: &types.ScreeningResult{Name: "Low Scorer", Score: 20}},
			{Result: &types.ScreeningResult{Name: "Top Scorer", Score: 90, MatchedSkills: []string{"SQL"}}},
		},
	}
	p.PrintBatchSummary(outcome)

	out := buf.String()
	assert.Contains(t, out, "BATCH RESULTS")
	assert.Contains(t, out, "#1  Top Scorer")
	assert.Contains(t, out, "#2  Low Scorer")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "rejected")
}

func TestPrintBatchSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(&pipeline.BatchOutcome{})
	assert.Contains(t, buf.String(), "No resumes were scored.")
}

func TestPrintResumeErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeErrors([]*pipeline.ResumeError{
		{Filename: "broken.pdf", Err: errors.New("unsupported document format")},
	})
	out := buf.String()
	assert.Contains(t, out, "FAILED RESUMES")
	assert.Contains(t, out, "broken.pdf")

	buf.Reset()
	p.PrintResumeErrors(nil)
	assert.Contains(t, buf.String(), "ALL RESUMES PROCESSED")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStats(2, 10, 61.5)
	out := buf.String()
	assert.Contains(t, out, "STORE STATS")
	assert.Contains(t, out, "61.5")
}
