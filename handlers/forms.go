// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/text/language"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/googleforms"
	"github.com/elfaka/site/middleware"
	"github.com/elfaka/site/models"
	"github.com/elfaka/site/survey"
	"github.com/elfaka/site/upstream"
)

// DefaultResponsesLimit is the page size for GET /api/forms/{formId}/responses.
const DefaultResponsesLimit = 50

// FormsClient is the subset of the Google Forms client the handlers use.
type FormsClient interface {
	ListForms(ctx context.Context, token string) ([]models.FormListItem, error)
	GetForm(ctx context.Context, token, formID string) (models.FormDetail, error)
	ListResponses(ctx context.Context, token, formID string, pageSize int, pageToken string) (models.FormResponses, error)
}

type FormsHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	client FormsClient
	store  *auth.Store
}

func NewFormsHandler(db *sql.DB, cfg cliparse.Config, client FormsClient) *FormsHandler {
	return &FormsHandler{
		db:     db,
		cfg:    cfg,
		client: client,
		store:  auth.NewStore(db, cfg.DatabaseType),
	}
}

// List handles GET /api/forms
func (h *FormsHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	forms, err := h.client.ListForms(r.Context(), sess.AccessToken)
	if err != nil {
		upstreamError(w, "failed to list forms", err)
		return
	}
	if forms == nil {
		forms = []models.FormListItem{}
	}

	middleware.JSONResponse(w, http.StatusOK, forms)
}

// Detail handles GET /api/forms/{formId}
func (h *FormsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	formID := mux.Vars(r)["formId"]

	form, err := h.client.GetForm(r.Context(), sess.AccessToken, formID)
	if err != nil {
		upstreamError(w, "failed to get form", err, "form_id", formID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, form)
}

// Responses handles GET /api/forms/{formId}/responses
func (h *FormsHandler) Responses(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	formID := mux.Vars(r)["formId"]

	limit, err := queryInt(r, "limit", DefaultResponsesLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	page, err := h.client.ListResponses(r.Context(), sess.AccessToken, formID,
		googleforms.ClampPageSize(limit), r.URL.Query().Get("pageToken"))
	if err != nil {
		upstreamError(w, "failed to list responses", err, "form_id", formID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, page)
}

// Analyze handles GET /api/forms/{formId}/analyze
func (h *FormsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	result, ok := h.analyze(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// Report handles GET /api/forms/{formId}/report
//
// It runs the same analysis as Analyze and returns the rendered question
// cards, filtered by the q parameter and fully expanded when expand=true.
func (h *FormsHandler) Report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	expand := false
	if v := query.Get("expand"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "expand must be a boolean")
			return
		}
		expand = b
	}

	result, ok := h.analyze(w, r)
	if !ok {
		return
	}

	report := survey.BuildReport(result, query.Get("q"), survey.ViewOptions{
		Expanded: expand,
		Locale:   surveyLocale(h.cfg.SurveyLocale),
	})

	middleware.JSONResponse(w, http.StatusOK, report)
}

// analyze fetches the form and the first page of responses and aggregates them.
// It writes the error response itself and reports whether the caller should go on.
func (h *FormsHandler) analyze(w http.ResponseWriter, r *http.Request) (models.AnalyzeResult, bool) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return models.AnalyzeResult{}, false
	}
	formID := mux.Vars(r)["formId"]

	limit, err := queryInt(r, "limit", h.cfg.AnalyzeLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
		return models.AnalyzeResult{}, false
	}

	form, err := h.client.GetForm(r.Context(), sess.AccessToken, formID)
	if err != nil {
		upstreamError(w, "failed to get form", err, "form_id", formID)
		return models.AnalyzeResult{}, false
	}

	page, err := h.client.ListResponses(r.Context(), sess.AccessToken, formID,
		googleforms.ClampPageSize(limit), "")
	if err != nil {
		upstreamError(w, "failed to list responses", err, "form_id", formID)
		return models.AnalyzeResult{}, false
	}

	result := survey.Analyze(form, page.Responses, survey.AnalyzeOptions{
		TextSampleLimit: h.cfg.TextSampleLimit,
	})

	slog.Info("form analyzed",
		"form_id", formID,
		"questions", len(result.Summaries),
		"responses", result.Meta.AnalyzedResponses,
	)

	return result, true
}

func (h *FormsHandler) requireSession(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	sess, err := currentSession(r, h.store, h.cfg.SessionSecret)
	if errors.Is(err, auth.ErrUnauthorized) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in required")
		return models.Session{}, false
	}
	if err != nil {
		slog.Error("failed to load session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Session{}, false
	}
	return sess, true
}

// upstreamError maps a failed upstream call to 404 when the upstream said so
// and 502 for everything else.
func upstreamError(w http.ResponseWriter, msg string, err error, attrs ...any) {
	slog.Error(msg, append(attrs, "error", err)...)

	switch {
	case upstream.StatusCode(err) == http.StatusNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found upstream")
	case errors.Is(err, context.DeadlineExceeded):
		middleware.ErrorResponse(w, http.StatusGatewayTimeout, "Upstream timed out")
	default:
		middleware.ErrorResponse(w, http.StatusBadGateway, "Upstream request failed")
	}
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func surveyLocale(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return survey.DefaultLocale
	}
	return t
}
