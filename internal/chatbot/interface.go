package chatbot

import "context"

// UseCase answers one question end to end.
type UseCase interface {
	// Answer routes the query, runs the selected lookup if any, and phrases the final answer.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
