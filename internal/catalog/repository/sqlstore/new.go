package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/sqldb"
)

type implRepository struct {
	db      *sql.DB
	dialect sqldb.Dialect
	l       log.Logger
}

// New creates a database/sql backed Repository for the catalog domain.
func New(db *sql.DB, dialect sqldb.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/sqlstore.%s", method)
}

// withConn runs fn on a dedicated connection that is released before returning.
func (r *implRepository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
