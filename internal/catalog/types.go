package catalog

// --- Domain Model ---

// Company owns job listings.
type Company struct {
	ID       int64
	Name     string
	Address  string
	Industry string
}

// Job is a job listing posted by a company.
type Job struct {
	ID        int64
	Title     string
	Salary    int64
	CompanyID int64
	Category  string
}

// Product is a paid JobFinder service.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	SalesCount  int64
}

// Found reports whether p came back from a lookup rather than being the zero value.
func (p Product) Found() bool {
	return p.Name != ""
}

// JobSummary is the shape returned by the job list lookups.
type JobSummary struct {
	Title  string
	Salary int64
}
