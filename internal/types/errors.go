package types

import "errors"

// Request validation errors surfaced to API callers.
var (
	ErrNoProfileSource        = errors.New("either profile_url or profile must be provided")
	ErrAmbiguousProfileSource = errors.New("profile_url and profile are mutually exclusive")
	ErrAmbiguousJobSource     = errors.New("job_description and job_url are mutually exclusive")
)
