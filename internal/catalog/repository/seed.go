package repository

import "jobfinder-chatbot/internal/catalog"

// SeedCompanies, SeedJobs and SeedProducts are the demo rows every fresh
// store starts with.
var (
	SeedCompanies = []catalog.Company{
		{ID: 1, Name: "Tech Solutions Inc.", Address: "123 Silicon Valley", Industry: "IT"},
		{ID: 2, Name: "Creative Marketing LLC", Address: "456 Ad Street", Industry: "Marketing"},
		{ID: 3, Name: "Global Finance Group", Address: "789 Wall Street", Industry: "Finance"},
	}

	SeedJobs = []catalog.Job{
		{ID: 1, Title: "Senior Python Developer", Salary: 120000, CompanyID: 1, Category: "Software"},
		{ID: 2, Title: "Marketing Specialist", Salary: 75000, CompanyID: 2, Category: "Marketing"},
		{ID: 3, Title: "Financial Analyst", Salary: 90000, CompanyID: 3, Category: "Finance"},
		{ID: 4, Title: "Junior Fullstack Dev", Salary: 80000, CompanyID: 1, Category: "Software"},
	}

	SeedProducts = []catalog.Product{
		{ID: 1, Name: "Premium Job Posting Package", Price: 99.99, SalesCount: 150},
		{ID: 2, Name: "Resume Review Service", Price: 49.99, SalesCount: 200},
		{ID: 3, Name: "AI Interview Prep Tool", Price: 19.99, SalesCount: 80},
		{ID: 4, Name: "Featured Company Listing", Price: 299.00, SalesCount: 50},
	}
)
