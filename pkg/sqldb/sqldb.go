// Package sqldb opens the relational store behind the catalog. It supports an
// embedded SQLite file (pure Go, no cgo) and PostgreSQL through pgx.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrUnsupportedDriver is returned for a driver name Open does not know.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

const pingTimeout = 5 * time.Second

// Dialect identifies the SQL flavour spoken by an opened database.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// Rebind rewrites '?' placeholders into the dialect's positional form.
// Queries must not carry '?' inside string literals.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Config selects and tunes the database.
type Config struct {
	// Driver is "sqlite" or "pgx" (aliases: "sqlite3", "postgres", "postgresql").
	Driver       string
	DSN          string
	MaxOpenConns int
	// MaxIdleConns of zero keeps no connection idle between lookups.
	MaxIdleConns int
}

// ParseDriver maps a configured driver name to the database/sql driver and dialect.
func ParseDriver(driver string) (string, Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return "sqlite", DialectSQLite, nil
	case "pgx", "postgres", "postgresql":
		return "pgx", DialectPostgres, nil
	default:
		return "", 0, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Open opens and pings the database described by cfg.
func Open(ctx context.Context, cfg Config) (*sql.DB, Dialect, error) {
	if cfg.DSN == "" {
		return nil, 0, fmt.Errorf("database dsn is required")
	}

	driverName, dialect, err := ParseDriver(cfg.Driver)
	if err != nil {
		return nil, 0, err
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s db: %w", dialect, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, 0, fmt.Errorf("ping %s db: %w", dialect, err)
	}

	return db, dialect, nil
}
