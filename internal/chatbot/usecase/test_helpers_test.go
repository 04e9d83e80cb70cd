package usecase

import (
	"context"
	"errors"

	"jobfinder-chatbot/internal/catalog"
	"jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/internal/catalog/repository/memory"
	"jobfinder-chatbot/internal/router"
	"jobfinder-chatbot/pkg/llmprovider"
	pkgLog "jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
)

// scriptedLLM answers calls with replies in order and records every request
type scriptedLLM struct {
	replies []string
	errs    []error
	reqs    []*llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	i := len(s.reqs)
	s.reqs = append(s.reqs, req)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.replies) {
		return nil, errors.New("scriptedLLM: no reply left")
	}
	return &llmprovider.Response{Text: s.replies[i]}, nil
}

// countingRepo wraps a Repository and counts lookups
type countingRepo struct {
	repository.Repository
	calls int
	err   error
}

func (c *countingRepo) CountProducts(ctx context.Context) (int64, error) {
	c.calls++
	if c.err != nil {
		return 0, c.err
	}
	return c.Repository.CountProducts(ctx)
}

func (c *countingRepo) GetBestSellingProduct(ctx context.Context) (catalog.Product, error) {
	c.calls++
	if c.err != nil {
		return catalog.Product{}, c.err
	}
	return c.Repository.GetBestSellingProduct(ctx)
}

func (c *countingRepo) GetProduct(ctx context.Context, opt repository.GetProductOptions) (catalog.Product, error) {
	c.calls++
	if c.err != nil {
		return catalog.Product{}, c.err
	}
	return c.Repository.GetProduct(ctx, opt)
}

func (c *countingRepo) CountJobs(ctx context.Context) (int64, error) {
	c.calls++
	if c.err != nil {
		return 0, c.err
	}
	return c.Repository.CountJobs(ctx)
}

func (c *countingRepo) ListJobs(ctx context.Context, opt repository.ListJobsOptions) ([]catalog.JobSummary, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.Repository.ListJobs(ctx, opt)
}

func seededRepo() *countingRepo {
	r := memory.New()
	_ = r.Seed(context.Background())
	return &countingRepo{Repository: r}
}

// newTestUseCase wires the real router and use case around a scripted LLM
func newTestUseCase(llm *scriptedLLM, repo repository.Repository, m *metrics.Metrics) *implUseCase {
	l := pkgLog.NewNop()
	return New(l, router.New(llm, l, 0), llm, repo, m, 0)
}
