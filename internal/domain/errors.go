package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decision pipeline.
var (
	// ErrInvalidIntent indicates the search intent failed validation.
	ErrInvalidIntent = errors.New("invalid search intent")

	// ErrMissingDepartureDate indicates the price advisor was asked to
	// advise without a departure date to reason about.
	ErrMissingDepartureDate = errors.New("price advisory requires a departure date")
)

// ProviderError wraps a failure from a source collaborator with its name.
// Provider failures never propagate past the orchestrator's fetch boundary;
// the error exists for logging and metadata only.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether retrying the provider could succeed
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}
