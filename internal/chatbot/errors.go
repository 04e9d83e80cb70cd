package chatbot

import "errors"

// Domain-specific errors for the chatbot package.
var (
	ErrEmptyQuery = errors.New("query is empty")
)
