package cli

import (
	"errors"

	"jobfinder-chatbot/internal/chatbot"
)

// errorMessage returns the log line for a failed query.
func errorMessage(err error) string {
	if errors.Is(err, chatbot.ErrEmptyQuery) {
		return "empty query"
	}
	return "error processing query: " + err.Error()
}
