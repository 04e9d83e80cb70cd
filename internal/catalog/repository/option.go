package repository

// GetProductOptions holds filter parameters for fetching a single Product.
type GetProductOptions struct {
	// Name is matched as a case-insensitive substring.
	Name string
}

// ListJobsOptions holds filter parameters for listing jobs.
// All non-empty fields are applied as AND conditions, each as a
// case-insensitive substring match.
type ListJobsOptions struct {
	Category    string
	CompanyName string
}
