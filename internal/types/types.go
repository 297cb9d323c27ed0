// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Format identifies a supported resume document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// MIME types accepted at the upload boundary. Anything else is rejected
// before it reaches the document extractor.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FormatFromMIME maps an accepted MIME type to its document format.
// The second return value is false for any MIME type outside the contract.
func FormatFromMIME(mime string) (Format, bool) {
	switch mime {
	case MIMEPDF:
		return FormatPDF, true
	case MIMEDOCX:
		return FormatDOCX, true
	default:
		return "", false
	}
}

// JobRole is the role definition a resume is scored against. It is owned by
// the job management collaborator; the scoring engine only reads it.
type JobRole struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department,omitempty"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Skills       []string  `json:"skills"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResumeDocument is the ephemeral input to one extraction call: raw bytes
// plus the declared format. It is not retained after scoring.
type ResumeDocument struct {
	Filename string
	Format   Format
	Data     []byte
}

// ExtractedProfile holds the plain text and best-effort contact fields pulled
// from one resume document. RawText is always present (possibly empty);
// every other field may be absent.
type ExtractedProfile struct {
	RawText string `json:"raw_text"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	College string `json:"college,omitempty"`
}

// CompletedFields counts how many of the four contact fields were extracted.
func (p *ExtractedProfile) CompletedFields() int {
	n := 0
	for _, f := range []string{p.Name, p.Email, p.Phone, p.College} {
		if f != "" {
			n++
		}
	}
	return n
}

// ScreeningResult is the immutable record produced once per (resume, job)
// pair. MatchedSkills is always a subset of both the job's skill list and
// the Skills field.
type ScreeningResult struct {
	ID            uuid.UUID `json:"id"`
	BatchID       uuid.UUID `json:"batch_id"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Filename      string    `json:"filename"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	College       string    `json:"college,omitempty"`
	Skills        []string  `json:"skills"`
	MatchedSkills []string  `json:"matched_skills"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
}

// Batch groups the results of one upload request against one job role.
type Batch struct {
	ID        uuid.UUID   `json:"id"`
	JobID     uuid.UUID   `json:"job_id"`
	CreatedAt time.Time   `json:"created_at"`
	ResultIDs []uuid.UUID `json:"result_ids"`
}

// Score band thresholds. These are a public contract consumed by display
// logic and must not drift.
const (
	BandRejectedBelow = 40
	BandHighFrom      = 70
)

// Band names derived from a score.
const (
	BandRejected = "rejected"
	BandMedium   = "medium"
	BandHigh     = "high"
)

// BandForScore classifies a 1..100 score into its display band.
func BandForScore(score int) string {
	switch {
	case score < BandRejectedBelow:
		return BandRejected
	case score < BandHighFrom:
		return BandMedium
	default:
		return BandHigh
	}
}
