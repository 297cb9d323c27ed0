package extraction

import (
	"errors"
	"fmt"
)

// Sentinel errors for the per-document failure taxonomy. Both are recorded in
// the batch result list and never escalate to a batch-level failure.
var (
	// ErrUnsupportedFormat indicates the byte content does not match the
	// declared document type.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument indicates the archive or stream structure of the
	// document could not be read.
	ErrCorruptDocument = errors.New("corrupt document")
)

// DocumentError wraps a sentinel with the declared format and the underlying
// parser failure, when one exists.
type DocumentError struct {
	Kind   error
	Format string
	Cause  error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v (%s): %v", e.Kind, e.Format, e.Cause)
	}
	return fmt.Sprintf("%v (%s)", e.Kind, e.Format)
}

func (e *DocumentError) Unwrap() error {
	return e.Kind
}

func unsupported(format string) error {
	return &DocumentError{Kind: ErrUnsupportedFormat, Format: format}
}

func corrupt(format string, cause error) error {
	return &DocumentError{Kind: ErrCorruptDocument, Format: format, Cause: cause}
}
