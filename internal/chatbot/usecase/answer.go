package usecase

import (
	"context"
	"fmt"
	"strings"

	"jobfinder-chatbot/internal/chatbot"
	"jobfinder-chatbot/internal/router"
)

// Answer routes the query and composes the final text.
// DirectAnswer and Clarification are returned as is; a FunctionCall costs one
// lookup and one more LLM call.
func (uc *implUseCase) Answer(ctx context.Context, input chatbot.AnswerInput) (chatbot.AnswerOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return chatbot.AnswerOutput{}, chatbot.ErrEmptyQuery
	}

	decision, err := uc.router.Classify(ctx, input.Query)
	if err != nil {
		return chatbot.AnswerOutput{}, fmt.Errorf("%s: route: %w", LogPrefixAnswer, err)
	}

	var out chatbot.AnswerOutput
	switch d := decision.(type) {
	case router.DirectAnswer:
		out = chatbot.AnswerOutput{Answer: d.Text, Outcome: chatbot.OutcomeDirect}

	case router.Clarification:
		out = chatbot.AnswerOutput{Answer: d.Question, Outcome: chatbot.OutcomeClarification}

	case router.FunctionCall:
		lookupContext, err := uc.dispatch(ctx, d)
		if err != nil {
			return chatbot.AnswerOutput{}, fmt.Errorf("%s: lookup %s: %w", LogPrefixAnswer, d.Function, err)
		}

		answer, err := uc.compose(ctx, input.Query, lookupContext)
		if err != nil {
			return chatbot.AnswerOutput{}, fmt.Errorf("%s: compose: %w", LogPrefixAnswer, err)
		}

		out = chatbot.AnswerOutput{
			Answer:   answer,
			Outcome:  chatbot.OutcomeFunctionCall,
			Function: d.Function,
			Context:  lookupContext,
		}

	default:
		return chatbot.AnswerOutput{}, fmt.Errorf("%s: unexpected decision %T", LogPrefixAnswer, decision)
	}

	uc.metrics.ObserveQuery(string(out.Outcome))
	return out, nil
}
