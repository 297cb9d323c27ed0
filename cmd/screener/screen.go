package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	screenJobFile string
	screenConfig  string
	screenWorkers int
	screenVerbose bool
	screenJSONOut bool
)

var screenCmd = &cobra.Command{
	Use:   "screen --job role.json resume.pdf [resume.docx ...]",
	Short: "Score resumes against a job role without a server",
	Long: `Screen one or more resume files against a job role defined in a JSON file.
The job file is validated against schemas/job_role.schema.json. Results are
printed ranked by score; failed files are reported individually and never
abort the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenJobFile, "job", "", "Path to job role JSON file (required)")
	screenCmd.Flags().StringVar(&screenConfig, "config", "", "Path to JSON config file")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "Documents processed concurrently")
	screenCmd.Flags().BoolVar(&screenVerbose, "verbose", false, "Print detailed progress boxes")
	screenCmd.Flags().BoolVar(&screenJSONOut, "json", false, "Emit results as JSON instead of text")
	_ = screenCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(screenConfig)
	if err != nil {
		return err
	}
	if screenWorkers != 0 {
		cfg.Workers = screenWorkers
	}
	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return err
	}

	job, err := loadJobRole(screenJobFile)
	if err != nil {
		return err
	}

	docs, err := loadResumeFiles(args)
	if err != nil {
		return err
	}

	store := db.NewMemoryStore()
	ctx := context.Background()
	if err := store.CreateJob(ctx, job); err != nil {
		return err
	}

	coordinator := pipeline.New(store, store, pipeline.Options{
		Workers: merged.Workers,
		Weights: merged.Weights(),
	})
	outcome, err := coordinator.ProcessBatch(ctx, job.ID, docs)
	if err != nil {
		return err
	}

	if screenJSONOut {
		return printJSON(cmd, outcome)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if screenVerbose {
		printer.PrintJobRole(job)
	}
	printer.PrintBatchSummary(outcome)
	printer.PrintResumeErrors(outcome.Errors())
	return nil
}

// loadJobRole reads, schema-validates, and decodes a job role file.
func loadJobRole(path string) (*types.JobRole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.JobRoleSchema); schemaPath != "" {
		if err := schemas.ValidateJobRoleFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("job file %s is invalid: %w", path, err)
		}
	}

	var job types.JobRole
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.Title == "" || len(job.Skills) == 0 {
		return nil, fmt.Errorf("job file %s must define a title and at least one skill", path)
	}
	job.ID = uuid.New()
	job.CreatedAt = time.Now().UTC()
	return &job, nil
}

// loadResumeFiles reads each path into a document, inferring the format from
// the file extension.
func loadResumeFiles(paths []string) ([]types.ResumeDocument, error) {
	docs := make([]types.ResumeDocument, 0, len(paths))
	for _, path := range paths {
		var format types.Format
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf":
			format = types.FormatPDF
		case ".docx":
			format = types.FormatDOCX
		default:
			return nil, fmt.Errorf("unsupported file extension on %s (want .pdf or .docx)", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, types.ResumeDocument{
			Filename: filepath.Base(path),
			Format:   format,
			Data:     data,
		})
	}
	return docs, nil
}

func printJSON(cmd *cobra.Command, outcome *pipeline.BatchOutcome) error {
	type errorOut struct {
		Filename string `json:"filename"`
		Error    string `json:"error"`
	}
	out := struct {
		BatchID  uuid.UUID                `json:"batchId"`
		JobTitle string                   `json:"jobTitle"`
		Results  []*types.ScreeningResult `json:"results"`
		Errors   []errorOut               `json:"errors"`
	}{
		BatchID:  outcome.BatchID,
		JobTitle: outcome.JobTitle,
		Results:  outcome.Results(),
		Errors:   make([]errorOut, 0),
	}
	for _, e := range outcome.Errors() {
		out.Errors = append(out.Errors, errorOut{Filename: e.Filename, Error: e.Err.Error()})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
