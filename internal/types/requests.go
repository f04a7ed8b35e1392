package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeRequest is the HTTP API request for running an analysis.
// Exactly one of ProfileURL or Profile must be set; JobDescription and JobURL
// are optional and mutually exclusive.
type AnalyzeRequest struct {
	ProfileURL     string      `json:"profile_url,omitempty" validate:"omitempty,url"`
	Profile        *RawProfile `json:"profile,omitempty"`
	JobDescription string      `json:"job_description,omitempty"`
	JobURL         string      `json:"job_url,omitempty" validate:"omitempty,url"`
	Suggest        bool        `json:"suggest,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator plus the
// cross-field rules the tag syntax cannot express.
func (r *AnalyzeRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.ProfileURL == "" && r.Profile == nil {
		return ErrNoProfileSource
	}
	if r.ProfileURL != "" && r.Profile != nil {
		return ErrAmbiguousProfileSource
	}
	if r.JobDescription != "" && r.JobURL != "" {
		return ErrAmbiguousJobSource
	}
	return nil
}

// TokenRequest exchanges the configured API key for a bearer token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	return validator.New().Struct(r)
}

// StoredAnalysis is an analysis as persisted by the analyses store.
type StoredAnalysis struct {
	ID         uuid.UUID `json:"id"`
	ProfileURL string    `json:"profile_url,omitempty"`
	Profile    *Profile  `json:"profile"`
	Analysis   *Analysis `json:"analysis"`
	CreatedAt  time.Time `json:"created_at"`
}
