// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/db"
	"github.com/elfaka/site/middleware"
	"github.com/elfaka/site/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const postColumns = `id, title, site, problem_number, link, level, language, solution, content_md, is_solved, created_at`

type PostHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPostHandler(db *sql.DB, cfg cliparse.Config) *PostHandler {
	return &PostHandler{db: db, cfg: cfg}
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := parsePostRequest(w, r)
	if !ok {
		return
	}

	id, err := db.InsertReturningID(r.Context(), h.db, h.cfg.DatabaseType, `
		INSERT INTO ps_post (title, site, problem_number, link, level, language, solution, content_md, is_solved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, req.Title, req.Site, req.ProblemNumber, req.Link, req.Level, req.Language, req.Solution, req.ContentMd,
		true, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "post_id", id, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, id)
}

// ListPosts handles GET /api/posts?page=0&size=10
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil || page < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page must be a non-negative integer")
		return
	}
	size, err := queryInt(r, "size", DefaultPageSize)
	if err != nil || size < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "size must be a positive integer")
		return
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page > math.MaxInt/size {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page is out of range")
		return
	}

	var total int64
	if err := h.db.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM ps_post`).Scan(&total); err != nil {
		slog.Error("failed to count posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.QueryContext(r.Context(), db.Rebind(h.cfg.DatabaseType,
		`SELECT `+postColumns+` FROM ps_post ORDER BY id DESC LIMIT $1 OFFSET $2`),
		size, page*size)
	if err != nil {
		slog.Error("failed to query posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	var posts []models.PsPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			slog.Error("failed to scan post", "error", err)
			continue
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewPage(posts, total, page, size))
}

// GetPost handles GET /api/posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	row := h.db.QueryRowContext(r.Context(), db.Rebind(h.cfg.DatabaseType,
		`SELECT `+postColumns+` FROM ps_post WHERE id = $1`), id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// UpdatePost handles PUT /api/posts/{id}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	req, ok := parsePostRequest(w, r)
	if !ok {
		return
	}

	res, err := h.db.ExecContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `
		UPDATE ps_post
		SET title = $1, site = $2, problem_number = $3, link = $4, level = $5,
		    language = $6, solution = $7, content_md = $8
		WHERE id = $9
	`), req.Title, req.Site, req.ProblemNumber, req.Link, req.Level, req.Language, req.Solution, req.ContentMd, id)
	if err != nil {
		slog.Error("failed to update post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if !h.exists(r, res, id) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	slog.Info("post updated", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, id)
}

// DeletePost handles DELETE /api/posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	res, err := h.db.ExecContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `DELETE FROM ps_post WHERE id = $1`), id)
	if err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	slog.Info("post deleted", "post_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// exists reports whether an UPDATE hit the row. MySQL counts only changed
// rows, so a zero count falls back to a lookup.
func (h *PostHandler) exists(r *http.Request, res sql.Result, id int64) bool {
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return true
	}
	var one int
	err := h.db.QueryRowContext(r.Context(), db.Rebind(h.cfg.DatabaseType,
		`SELECT 1 FROM ps_post WHERE id = $1`), id).Scan(&one)
	return err == nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.PsPost, error) {
	var p models.PsPost
	err := row.Scan(&p.ID, &p.Title, &p.Site, &p.ProblemNumber, &p.Link, &p.Level,
		&p.Language, &p.Solution, &p.ContentMd, &p.IsSolved, &p.CreatedAt)
	return p, err
}

func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return 0, false
	}
	return id, true
}

func parsePostRequest(w http.ResponseWriter, r *http.Request) (models.PsPostRequest, bool) {
	var req models.PsPostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return req, false
	}
	return req, true
}
