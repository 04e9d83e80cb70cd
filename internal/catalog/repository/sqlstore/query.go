package sqlstore

import (
	"fmt"
	"strings"

	"jobfinder-chatbot/internal/catalog"
	repo "jobfinder-chatbot/internal/catalog/repository"
)

const (
	queryCountProducts = `SELECT COUNT(*) FROM products`

	queryBestSellingProduct = `
		SELECT name, sales_count FROM products
		ORDER BY sales_count DESC, id ASC
		LIMIT 1`

	// queryGetProduct takes the dialect's lower-cased name column.
	queryGetProduct = `
		SELECT name, price, description, sales_count FROM products
		WHERE %s LIKE ? ESCAPE '\'
		ORDER BY id ASC
		LIMIT 1`

	queryCountJobs = `SELECT COUNT(*) FROM jobs`

	queryListJobsBase = `
		SELECT j.title, j.salary FROM jobs j
		JOIN companies c ON j.company_id = c.id`
)

// buildListJobsQuery builds the query + args for ListJobs.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListJobsQuery(opt repo.ListJobsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Category != "" {
		conditions = append(conditions, r.dialect.Lower("j.category")+` LIKE ? ESCAPE '\'`)
		args = append(args, catalog.LikePattern(opt.Category))
	}
	if opt.CompanyName != "" {
		conditions = append(conditions, r.dialect.Lower("c.name")+` LIKE ? ESCAPE '\'`)
		args = append(args, catalog.LikePattern(opt.CompanyName))
	}

	query := queryListJobsBase
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY j.id ASC"

	return r.dialect.Rebind(query), args
}

func (r *implRepository) getProductQuery() string {
	return r.dialect.Rebind(fmt.Sprintf(queryGetProduct, r.dialect.Lower("name")))
}
