package usecase

import (
	"context"
	"fmt"

	"jobfinder-chatbot/pkg/llmprovider"
)

// compose asks the model to phrase the answer from lookupContext at its
// default temperature.
func (uc *implUseCase) compose(ctx context.Context, query, lookupContext string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Parts:     []string{buildFinalPrompt(query, lookupContext)},
		MaxTokens: uc.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func buildFinalPrompt(query, lookupContext string) string {
	return fmt.Sprintf(PromptFinalAnswer, lookupContext, query)
}
