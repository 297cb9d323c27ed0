package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateJobRequest represents the payload to create a new job role.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Department   string   `json:"department,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements" validate:"required"`
	Skills       []string `json:"skills" validate:"required,min=1,dive,required"`
}

// UpdateJobRequest represents the payload to update an existing job role.
// Semantics match CreateJobRequest; the ID comes from the URL.
type UpdateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Department   string   `json:"department,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements" validate:"required"`
	Skills       []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
