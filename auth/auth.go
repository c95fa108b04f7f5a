// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// CookieName is the session cookie set by POST /api/auth/session.
const CookieName = "elfaka_session"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrUnauthorized   = errors.New("not signed in")
)

// NewSessionID creates a random secure session identifier.
func NewSessionID() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// signature is the HMAC of a session id. Deterministic for a given secret.
func signature(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// SignSession returns the cookie value for a session: "<id>.<signature>".
func SignSession(sessionID, secret string) string {
	return sessionID + "." + signature(sessionID, secret)
}

// VerifySession checks a cookie value and returns the session id it carries.
func VerifySession(value, secret string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" || sig == "" {
		return "", ErrInvalidSession
	}
	expected := signature(id, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSession
	}
	return id, nil
}
