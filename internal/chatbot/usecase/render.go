package usecase

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"jobfinder-chatbot/internal/catalog"
)

// formatMoney renders a price with thousands separators and two decimals.
func formatMoney(amount float64) string {
	return humanize.FormatFloat("#,###.##", amount)
}

// formatSalary renders a whole-dollar salary with thousands separators.
func formatSalary(salary int64) string {
	return humanize.Comma(salary)
}

func renderProduct(p catalog.Product) string {
	desc := p.Description
	if desc == "" {
		desc = NoDescription
	}
	return fmt.Sprintf(ContextProductDetails, p.Name, formatMoney(p.Price), desc, p.SalesCount)
}

func renderJobs(jobs []catalog.JobSummary) string {
	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		lines = append(lines, fmt.Sprintf(JobLine, j.Title, formatSalary(j.Salary)))
	}
	return strings.Join(lines, "\n")
}
