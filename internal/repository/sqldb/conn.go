package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"employee-tracker/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect names the database/sql driver behind a connection. Statements are
// written with "?" placeholders and rebound for drivers that need it.
type Dialect string

const (
	MySQL    Dialect = config.DriverMySQL
	Postgres Dialect = config.DriverPostgres
	SQLite   Dialect = config.DriverSQLite
)

// Rebind rewrites "?" placeholders into "$1", "$2", ... for postgres.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open acquires the single store connection used for the whole session.
func Open(cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect := Dialect(cfg.Driver)

	db, err := sql.Open(cfg.Driver, cfg.GetDSN())
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	return db, dialect, nil
}

// conn carries the handle and dialect shared by every repository.
type conn struct {
	db      *sql.DB
	dialect Dialect
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, c.dialect.Rebind(query), args...)
}

func (c conn) exec(ctx context.Context, query string, args ...any) error {
	_, err := c.db.ExecContext(ctx, c.dialect.Rebind(query), args...)
	return err
}

// insert runs an INSERT and returns the store-assigned id. lib/pq has no
// LastInsertId, so postgres statements get a RETURNING clause instead.
func (c conn) insert(ctx context.Context, query string, args ...any) (int64, error) {
	if c.dialect == Postgres {
		var id int64
		err := c.db.QueryRowContext(ctx, c.dialect.Rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func idPointer(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
