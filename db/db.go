// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types. These match cliparse's DatabaseType values.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
	MySQL    = "mysql"
)

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, dbType, dsn string) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch dbType {
	case SQLite:
		conn, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w", dsn, err)
		}
		// One writer at a time; avoids "database is locked"
		conn.SetMaxOpenConns(1)

	case Postgres:
		conn, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
		}

	case MySQL:
		mcfg, perr := mysql.ParseDSN(dsn)
		if perr != nil {
			return nil, fmt.Errorf("invalid MySQL DSN (want user:password@tcp(host:port)/dbname): %w", perr)
		}
		// Scan DATETIME columns into time.Time
		mcfg.ParseTime = true
		conn, err = sql.Open("mysql", mcfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dbType, err)
	}

	return conn, nil
}

// Rebind converts $1-style placeholders to ? for MySQL.
// Queries are written for postgres; sqlite accepts both forms.
func Rebind(dbType, query string) string {
	if dbType != MySQL {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && isDigit(query[i+1]) {
			b.WriteByte('?')
			for i+1 < len(query) && isDigit(query[i+1]) {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// InsertReturningID runs an INSERT and returns the generated id column.
func InsertReturningID(ctx context.Context, conn *sql.DB, dbType, query string, args ...any) (int64, error) {
	if dbType == MySQL {
		res, err := conn.ExecContext(ctx, Rebind(dbType, query), args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var id int64
	if err := conn.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
