// Package memory is an in-process catalog store over the seed rows. It backs
// database.driver "memory" and the pipeline tests.
package memory

import (
	"context"
	"sync"

	"jobfinder-chatbot/internal/catalog"
	"jobfinder-chatbot/internal/catalog/repository"
)

type implRepository struct {
	mu        sync.RWMutex
	companies []catalog.Company
	jobs      []catalog.Job
	products  []catalog.Product
}

// New returns an empty store; call Seed to load the demo rows.
func New() repository.Repository {
	return &implRepository{}
}

// NewWith returns a store holding exactly the given rows.
func NewWith(companies []catalog.Company, jobs []catalog.Job, products []catalog.Product) repository.Repository {
	return &implRepository{
		companies: append([]catalog.Company(nil), companies...),
		jobs:      append([]catalog.Job(nil), jobs...),
		products:  append([]catalog.Product(nil), products...),
	}
}

// Seed adds every seed row whose id is not present yet.
func (r *implRepository) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range repository.SeedCompanies {
		if !r.hasCompany(c.ID) {
			r.companies = append(r.companies, c)
		}
	}
	for _, j := range repository.SeedJobs {
		if !r.hasJob(j.ID) {
			r.jobs = append(r.jobs, j)
		}
	}
	for _, p := range repository.SeedProducts {
		if !r.hasProduct(p.ID) {
			r.products = append(r.products, p)
		}
	}
	return nil
}

func (r *implRepository) CountProducts(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// GetBestSellingProduct breaks ties on the lower id, like the SQL store.
func (r *implRepository) GetBestSellingProduct(ctx context.Context) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best catalog.Product
	found := false
	for _, p := range r.products {
		if !found || p.SalesCount > best.SalesCount || (p.SalesCount == best.SalesCount && p.ID < best.ID) {
			best, found = p, true
		}
	}
	if !found {
		return catalog.Product{}, nil
	}
	return catalog.Product{Name: best.Name, SalesCount: best.SalesCount}, nil
}

func (r *implRepository) GetProduct(ctx context.Context, opt repository.GetProductOptions) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		match catalog.Product
		found bool
	)
	for _, p := range r.products {
		if catalog.Matches(p.Name, opt.Name) && (!found || p.ID < match.ID) {
			match, found = p, true
		}
	}
	if !found {
		return catalog.Product{}, nil
	}
	match.ID = 0
	return match, nil
}

func (r *implRepository) CountJobs(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.jobs)), nil
}

func (r *implRepository) ListJobs(ctx context.Context, opt repository.ListJobsOptions) ([]catalog.JobSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[int64]string, len(r.companies))
	for _, c := range r.companies {
		names[c.ID] = c.Name
	}

	var out []catalog.JobSummary
	for _, j := range sortedJobs(r.jobs) {
		company, ok := names[j.CompanyID]
		if !ok {
			continue
		}
		if opt.Category != "" && !catalog.Matches(j.Category, opt.Category) {
			continue
		}
		if opt.CompanyName != "" && !catalog.Matches(company, opt.CompanyName) {
			continue
		}
		out = append(out, catalog.JobSummary{Title: j.Title, Salary: j.Salary})
	}
	return out, nil
}

func (r *implRepository) hasCompany(id int64) bool {
	for _, c := range r.companies {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *implRepository) hasJob(id int64) bool {
	for _, j := range r.jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}

func (r *implRepository) hasProduct(id int64) bool {
	for _, p := range r.products {
		if p.ID == id {
			return true
		}
	}
	return false
}
