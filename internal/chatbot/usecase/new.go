package usecase

import (
	"jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/internal/chatbot"
	"jobfinder-chatbot/internal/router"
	"jobfinder-chatbot/pkg/llmprovider"
	pkgLog "jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
)

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	llm       llmprovider.Generator
	repo      repository.Repository
	metrics   *metrics.Metrics
	maxTokens int
}

var _ chatbot.UseCase = (*implUseCase)(nil)

// New creates a new chatbot UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	rt router.Router,
	llm llmprovider.Generator,
	repo repository.Repository,
	m *metrics.Metrics,
	maxTokens int,
) *implUseCase {
	return &implUseCase{
		l:         l,
		router:    rt,
		llm:       llm,
		repo:      repo,
		metrics:   m,
		maxTokens: maxTokens,
	}
}
