package repository

import (
	"context"

	"jobfinder-chatbot/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ProductRepository
	JobRepository
	Seeder
}

// ProductRepository defines the product lookups.
// A lookup without a match returns the zero value and a nil error.
type ProductRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	GetBestSellingProduct(ctx context.Context) (catalog.Product, error)
	GetProduct(ctx context.Context, opt GetProductOptions) (catalog.Product, error)
}

// JobRepository defines the job lookups.
type JobRepository interface {
	CountJobs(ctx context.Context) (int64, error)
	ListJobs(ctx context.Context, opt ListJobsOptions) ([]catalog.JobSummary, error)
}

// Seeder creates the schema and the demo rows when they are missing.
type Seeder interface {
	Seed(ctx context.Context) error
}
