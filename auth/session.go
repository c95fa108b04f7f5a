// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/elfaka/site/db"
	"github.com/elfaka/site/models"
)

// DefaultSessionTTL is how long a session lives without renewal.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Store persists sessions in the user_session table.
type Store struct {
	db     *sql.DB
	dbType string
	now    func() time.Time
}

func NewStore(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType, now: time.Now}
}

// Create stores a new session for name and returns it.
func (s *Store) Create(ctx context.Context, name, accessToken string, ttl time.Duration) (models.Session, error) {
	id, err := NewSessionID()
	if err != nil {
		return models.Session{}, err
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	now := s.now().UTC()
	sess := models.Session{
		ID:          id,
		Name:        name,
		AccessToken: accessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	_, err = s.db.ExecContext(ctx, db.Rebind(s.dbType, `
		INSERT INTO user_session (id, name, access_token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`), sess.ID, sess.Name, sess.AccessToken, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// Get returns an unexpired session. Unknown and expired ids give ErrInvalidSession.
func (s *Store) Get(ctx context.Context, id string) (models.Session, error) {
	var sess models.Session
	err := s.db.QueryRowContext(ctx, db.Rebind(s.dbType, `
		SELECT id, name, access_token, created_at, expires_at
		FROM user_session
		WHERE id = $1
	`), id).Scan(&sess.ID, &sess.Name, &sess.AccessToken, &sess.CreatedAt, &sess.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrInvalidSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if !s.now().Before(sess.ExpiresAt) {
		return models.Session{}, ErrInvalidSession
	}
	return sess, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, db.Rebind(s.dbType, `DELETE FROM user_session WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry and reports how many.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, db.Rebind(s.dbType, `DELETE FROM user_session WHERE expires_at <= $1`), s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
