package sqlstore

import (
	"context"
	"database/sql"

	"jobfinder-chatbot/internal/catalog"
	repo "jobfinder-chatbot/internal/catalog/repository"
)

// CountJobs returns the number of job listings.
func (r *implRepository) CountJobs(ctx context.Context) (int64, error) {
	var total int64
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, queryCountJobs).Scan(&total)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountJobs"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

// ListJobs returns the jobs matching opt in id order. No match is an empty list.
func (r *implRepository) ListJobs(ctx context.Context, opt repo.ListJobsOptions) ([]catalog.JobSummary, error) {
	query, args := r.buildListJobsQuery(opt)

	var jobs []catalog.JobSummary
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				job    catalog.JobSummary
				salary sql.NullInt64
			)
			if err := rows.Scan(&job.Title, &salary); err != nil {
				return err
			}
			job.Salary = salary.Int64
			jobs = append(jobs, job)
		}
		return rows.Err()
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListJobs"), err)
		return nil, repo.ErrFailedToList
	}
	return jobs, nil
}
