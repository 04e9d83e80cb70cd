package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"jobfinder-chatbot/internal/catalog"
	repo "jobfinder-chatbot/internal/catalog/repository"
)

// CountProducts returns the number of products.
func (r *implRepository) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, queryCountProducts).Scan(&total)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountProducts"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

// GetBestSellingProduct returns the product with the highest sales count.
// Returns zero-value Product when the table is empty.
func (r *implRepository) GetBestSellingProduct(ctx context.Context) (catalog.Product, error) {
	var p catalog.Product
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, queryBestSellingProduct).Scan(&p.Name, &p.SalesCount)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetBestSellingProduct"), err)
		return catalog.Product{}, repo.ErrFailedToGet
	}
	return p, nil
}

// GetProduct returns the first product whose name contains opt.Name.
// Returns zero-value Product when nothing matches.
func (r *implRepository) GetProduct(ctx context.Context, opt repo.GetProductOptions) (catalog.Product, error) {
	var (
		p    catalog.Product
		desc sql.NullString
	)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, r.getProductQuery(), catalog.LikePattern(opt.Name)).
			Scan(&p.Name, &p.Price, &desc, &p.SalesCount)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProduct"), err)
		return catalog.Product{}, repo.ErrFailedToGet
	}
	p.Description = desc.String
	return p, nil
}
