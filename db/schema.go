// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Table names
const (
	SessionTable = "user_session"
	PostTable    = "ps_post"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dbType string) error {
	stmts := []struct {
		name  string
		query string
	}{
		{SessionTable, sessionTableQuery(dbType)},
		{SessionTable + " index", sessionIndexQuery(dbType)},
		{PostTable, postTableQuery(dbType)},
	}

	for _, s := range stmts {
		if s.query == "" {
			continue
		}
		if _, err := conn.Exec(s.query); err != nil {
			return fmt.Errorf("failed to create %s: %w", s.name, err)
		}
	}

	return nil
}

func sessionTableQuery(dbType string) string {
	switch dbType {
	case MySQL:
		return `
			CREATE TABLE IF NOT EXISTS user_session (
				id VARCHAR(64) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				access_token TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL,
				expires_at DATETIME(6) NOT NULL,
				INDEX idx_user_session_expires_at (expires_at)
			)`

	case Postgres:
		return `
			CREATE TABLE IF NOT EXISTS user_session (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				access_token TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				expires_at TIMESTAMPTZ NOT NULL
			)`

	default: // SQLite
		return `
			CREATE TABLE IF NOT EXISTS user_session (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				access_token TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				expires_at TIMESTAMP NOT NULL
			)`
	}
}

// MySQL has no CREATE INDEX IF NOT EXISTS; its index is declared inline.
func sessionIndexQuery(dbType string) string {
	if dbType == MySQL {
		return ""
	}
	return `CREATE INDEX IF NOT EXISTS idx_user_session_expires_at ON user_session(expires_at)`
}

func postTableQuery(dbType string) string {
	switch dbType {
	case MySQL:
		return `
			CREATE TABLE IF NOT EXISTS ps_post (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				site VARCHAR(100) NOT NULL DEFAULT '',
				problem_number VARCHAR(50) NOT NULL DEFAULT '',
				link TEXT NOT NULL,
				level VARCHAR(50) NOT NULL DEFAULT '',
				language VARCHAR(50) NOT NULL DEFAULT '',
				solution MEDIUMTEXT NOT NULL,
				content_md MEDIUMTEXT NOT NULL,
				is_solved BOOLEAN NOT NULL DEFAULT TRUE,
				created_at DATETIME(6) NOT NULL
			)`

	case Postgres:
		return `
			CREATE TABLE IF NOT EXISTS ps_post (
				id BIGSERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				site TEXT NOT NULL DEFAULT '',
				problem_number TEXT NOT NULL DEFAULT '',
				link TEXT NOT NULL DEFAULT '',
				level TEXT NOT NULL DEFAULT '',
				language TEXT NOT NULL DEFAULT '',
				solution TEXT NOT NULL DEFAULT '',
				content_md TEXT NOT NULL DEFAULT '',
				is_solved BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL
			)`

	default: // SQLite
		return `
			CREATE TABLE IF NOT EXISTS ps_post (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				site TEXT NOT NULL DEFAULT '',
				problem_number TEXT NOT NULL DEFAULT '',
				link TEXT NOT NULL DEFAULT '',
				level TEXT NOT NULL DEFAULT '',
				language TEXT NOT NULL DEFAULT '',
				solution TEXT NOT NULL DEFAULT '',
				content_md TEXT NOT NULL DEFAULT '',
				is_solved BOOLEAN NOT NULL DEFAULT 1,
				created_at TIMESTAMP NOT NULL
			)`
	}
}
