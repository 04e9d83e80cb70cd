package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	repo "jobfinder-chatbot/internal/catalog/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		industry TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		salary BIGINT,
		company_id INTEGER REFERENCES companies(id),
		category TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price DOUBLE PRECISION,
		description TEXT,
		sales_count INTEGER DEFAULT 0
	)`,
}

const (
	insertCompany = `INSERT INTO companies (id, name, address, industry) VALUES (?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`
	insertJob     = `INSERT INTO jobs (id, title, salary, company_id, category) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`
	insertProduct = `INSERT INTO products (id, name, price, description, sales_count) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`
)

// Seed creates the tables if missing and inserts the demo rows. Existing rows
// are left untouched, so running it on every start is safe.
func (r *implRepository) Seed(ctx context.Context) error {
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create table: %w", err)
			}
		}

		for _, c := range repo.SeedCompanies {
			if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insertCompany), c.ID, c.Name, c.Address, c.Industry); err != nil {
				return fmt.Errorf("insert company %d: %w", c.ID, err)
			}
		}
		for _, j := range repo.SeedJobs {
			if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insertJob), j.ID, j.Title, j.Salary, j.CompanyID, j.Category); err != nil {
				return fmt.Errorf("insert job %d: %w", j.ID, err)
			}
		}
		for _, p := range repo.SeedProducts {
			desc := sql.NullString{String: p.Description, Valid: p.Description != ""}
			if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insertProduct), p.ID, p.Name, p.Price, desc, p.SalesCount); err != nil {
				return fmt.Errorf("insert product %d: %w", p.ID, err)
			}
		}

		return tx.Commit()
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Seed"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSeed, err)
	}
	return nil
}
