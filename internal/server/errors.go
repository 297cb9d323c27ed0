package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-screener/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedMediaType indicates an uploaded file's MIME type is outside
// the accepted whitelist.
type ErrUnsupportedMediaType struct {
	MIME string
}

func (e *ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MIME)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var media *ErrUnsupportedMediaType
	switch {
	case errors.Is(err, pipeline.ErrJobNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &media):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
