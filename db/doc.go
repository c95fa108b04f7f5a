// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database and creates its schema.

# Drivers

Open picks a driver by database type:

  - sqlite: modernc.org/sqlite (pure Go, default, single connection)
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql, with parseTime forced on

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Column types differ per backend; the table shapes do not.

# Tables

  - user_session: signed-in users and their upstream access token
  - ps_post: problem-solving blog posts

# Queries

Queries are written with $1-style placeholders. Rebind rewrites them to ? for
MySQL, and InsertReturningID hides the RETURNING / LastInsertId difference.
*/
package db
