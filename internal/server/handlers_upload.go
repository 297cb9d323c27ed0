package server

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// resultResponse is a screening result enriched with its display band.
type resultResponse struct {
	types.ScreeningResult
	Band string `json:"band"`
}

func toResultResponse(r types.ScreeningResult) resultResponse {
	return resultResponse{ScreeningResult: r, Band: types.BandForScore(r.Score)}
}

// uploadError is the per-file error entry of an upload response.
type uploadError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// handleUpload accepts a multipart batch of resumes under the "resumes"
// field, scores each against the job in the "jobId" field, and returns the
// results together with per-file errors. One bad file never fails the batch;
// only a missing job does.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.FormValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid or missing jobId")
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["resumes"]) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no resumes uploaded")
		return
	}

	var docs []types.ResumeDocument
	var uploadErrors []uploadError
	for _, fh := range r.MultipartForm.File["resumes"] {
		doc, err := s.readUpload(fh)
		if err != nil {
			uploadErrors = append(uploadErrors, uploadError{Filename: fh.Filename, Error: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}

	outcome, err := s.coordinator.ProcessBatch(r.Context(), jobID, docs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results := make([]resultResponse, 0, len(outcome.Items))
	for _, res := range outcome.Results() {
		results = append(results, toResultResponse(*res))
	}
	for _, resErr := range outcome.Errors() {
		uploadErrors = append(uploadErrors, uploadError{
			Filename: resErr.Filename,
			Error:    resErr.Err.Error(),
		})
	}
	if uploadErrors == nil {
		uploadErrors = []uploadError{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"batchId":  outcome.BatchID,
		"jobId":    outcome.JobID,
		"jobTitle": outcome.JobTitle,
		"results":  results,
		"errors":   uploadErrors,
	})
}

// readUpload turns one multipart file into a ResumeDocument, enforcing the
// MIME whitelist and the per-file size cap before any bytes are parsed.
func (s *Server) readUpload(fh *multipart.FileHeader) (types.ResumeDocument, error) {
	if fh.Size > s.maxUploadBytes {
		return types.ResumeDocument{}, fmt.Errorf("file exceeds %d byte limit", s.maxUploadBytes)
	}

	mediaType := fh.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	format, ok := types.FormatFromMIME(mediaType)
	if !ok {
		return types.ResumeDocument{}, &ErrUnsupportedMediaType{MIME: mediaType}
	}

	f, err := fh.Open()
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxUploadBytes+1))
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return types.ResumeDocument{}, fmt.Errorf("file exceeds %d byte limit", s.maxUploadBytes)
	}

	return types.ResumeDocument{Filename: fh.Filename, Format: format, Data: data}, nil
}
