package router

import (
	"context"
	"fmt"

	"jobfinder-chatbot/pkg/llmprovider"
)

// Classify asks the model to route query and parses its reply.
// Only a failed LLM call is an error; every reply maps to some Decision.
func (r *SemanticRouter) Classify(ctx context.Context, query string) (Decision, error) {
	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptRouterSystem,
		Parts:             []string{query},
		Temperature:       llmprovider.Temperature(RouterTemperature),
		MaxTokens:         r.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	decision, info := parseReply(resp.Text)
	switch {
	case info.err != nil:
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, info.err)
	case info.structured && info.action == ActionUnknown:
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgUnknownAction)
	}

	switch d := decision.(type) {
	case FunctionCall:
		r.l.Infof(ctx, "%s: Routed to function %s (raw %q, %d param(s))", LogPrefixClassify, d.Function, d.Name, len(d.Params))
	case Clarification:
		r.l.Infof(ctx, "%s: Routed to clarification", LogPrefixClassify)
	case DirectAnswer:
		r.l.Infof(ctx, "%s: Routed to direct answer", LogPrefixClassify)
	}

	return decision, nil
}
