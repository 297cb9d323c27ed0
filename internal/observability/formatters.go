// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRole outputs a human-readable summary of the job being screened for.
func (p *Printer) PrintJobRole(job *types.JobRole) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", job.Title))
	if job.Department != "" {
		sb.WriteString(fmt.Sprintf("Department: %s\n", job.Department))
	}
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	}

	if len(job.Skills) > 0 {
		sb.WriteString("\nRequired skills:\n")
		count := min(len(job.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Skills[i]))
		}
		if len(job.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Skills)-maxItemsToShow))
		}
	}

	p.printBox("JOB ROLE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the ranked results of one batch, best score first.
func (p *Printer) PrintBatchSummary(outcome *pipeline.BatchOutcome) {
	if outcome == nil {
		return
	}
	results := outcome.Results()
	if len(results) == 0 {
		p.printBox("BATCH RESULTS", "No resumes were scored.")
		return
	}

	ranked := make([]*types.ScreeningResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scored %d of %d resumes for %q\n\n",
		len(results), len(outcome.Items), outcome.JobTitle))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		label := r.Name
		if label == "" {
			label = r.Filename
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", r.Score, types.BandForScore(r.Score)))
		if len(r.MatchedSkills) > 0 {
			skills := strings.Join(r.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranked)-maxItemsToShow))
	}

	p.printBox("BATCH RESULTS", sb.String())
}

// PrintResumeErrors outputs the per-resume failures of one batch.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResumeErrors(errs []*pipeline.ResumeError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL RESUMES PROCESSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d failed resumes:\n\n", len(errs)))

	for i, e := range errs {
		detail := e.Err.Error()
		if len(detail) > 45 {
			detail = detail[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Filename))
		sb.WriteString(fmt.Sprintf("  %s\n", detail))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FAILED RESUMES", sb.String())
}

// PrintStats outputs store-wide aggregates.
func (p *Printer) PrintStats(totalJobs, totalResults int, averageScore float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs:          %d\n", totalJobs))
	sb.WriteString(fmt.Sprintf("Results:       %d\n", totalResults))
	sb.WriteString(fmt.Sprintf("Average score: %.1f", averageScore))
	p.printBox("STORE STATS", sb.String())
}
