package llmprovider

import (
	"errors"
	"fmt"
)

// Manager and factory failures.
var (
	ErrNoProvidersConfigured = errors.New("no llm providers configured")
	ErrAllProvidersFailed    = errors.New("every llm provider failed")
	ErrInvalidRequest        = errors.New("llm request has no parts")
	// ErrEmptyResponse is reported for a reply without usable text.
	ErrEmptyResponse   = errors.New("llm reply has no text")
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// ProviderError records which provider produced Err.
type ProviderError struct {
	Provider string
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s/%s: %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
