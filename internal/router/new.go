package router

import (
	"context"

	"jobfinder-chatbot/pkg/llmprovider"
	"jobfinder-chatbot/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, query string) (Decision, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm       llmprovider.Generator
	l         log.Logger
	maxTokens int
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. maxTokens of zero leaves the provider default.
func New(llm llmprovider.Generator, l log.Logger, maxTokens int) *SemanticRouter {
	return &SemanticRouter{
		llm:       llm,
		l:         l,
		maxTokens: maxTokens,
	}
}
