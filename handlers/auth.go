// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/middleware"
	"github.com/elfaka/site/models"
)

type AuthHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	store *auth.Store
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, store: auth.NewStore(db, cfg.DatabaseType)}
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := currentSession(r, h.store, h.cfg.SessionSecret)
	if err != nil {
		if !errors.Is(err, auth.ErrUnauthorized) {
			slog.Error("failed to load session", "error", err)
		}
		middleware.JSONResponse(w, http.StatusOK, models.MeResponse{Authenticated: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		Authenticated: true,
		Name:          sess.Name,
	})
}

// SessionHookHeader carries the shared secret that authorizes session creation.
const SessionHookHeader = "X-Session-Hook-Secret"

// CreateSession handles POST /api/auth/session
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if !h.hookAllowed(r) {
		slog.Warn("session creation rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.AccessToken == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "accessToken is required")
		return
	}
	if req.TTLSeconds < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ttlSeconds must not be negative")
		return
	}

	ttl := auth.DefaultSessionTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	sess, err := h.store.Create(r.Context(), req.Name, req.AccessToken, ttl)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    auth.SignSession(sess.ID, h.cfg.SessionSecret),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("session created", "name", sess.Name, "expires_at", sess.ExpiresAt)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		Name:      sess.Name,
		ExpiresAt: sess.ExpiresAt,
	})
}

// hookAllowed reports whether r carries the configured hook secret.
// With no secret configured every caller may create sessions.
func (h *AuthHandler) hookAllowed(r *http.Request) bool {
	if h.cfg.SessionHookSecret == "" {
		return true
	}
	got := r.Header.Get(SessionHookHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.SessionHookSecret)) == 1
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil {
		if id, err := auth.VerifySession(c.Value, h.cfg.SessionSecret); err == nil {
			if err := h.store.Delete(r.Context(), id); err != nil {
				slog.Error("failed to delete session", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
				return
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// currentSession resolves the session cookie on r.
// Missing, forged and expired cookies all yield auth.ErrUnauthorized.
func currentSession(r *http.Request, store *auth.Store, secret string) (models.Session, error) {
	c, err := r.Cookie(auth.CookieName)
	if err != nil {
		return models.Session{}, auth.ErrUnauthorized
	}

	id, err := auth.VerifySession(c.Value, secret)
	if err != nil {
		return models.Session{}, auth.ErrUnauthorized
	}

	sess, err := store.Get(r.Context(), id)
	if errors.Is(err, auth.ErrInvalidSession) {
		return models.Session{}, auth.ErrUnauthorized
	}
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}
