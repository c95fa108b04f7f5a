// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/db"
	"github.com/elfaka/site/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     ":memory:",
		DatabaseType:    db.SQLite,
		SessionSecret:   "test-session-secret",
		LostArkAPIKey:   "test-lostark-key",
		UpstreamTimeout: 5 * time.Second,
		AnalyzeLimit:    200,
		TextSampleLimit: 20,
		SurveyLocale:    "ko",
	}
}

// CreateTestSession stores a session and returns the cookie that carries it
func CreateTestSession(t *testing.T, conn *sql.DB, cfg cliparse.Config, name, accessToken string) *http.Cookie {
	t.Helper()

	sess, err := auth.NewStore(conn, cfg.DatabaseType).Create(context.Background(), name, accessToken, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return &http.Cookie{
		Name:  auth.CookieName,
		Value: auth.SignSession(sess.ID, cfg.SessionSecret),
	}
}

// CreateTestPost inserts a post and returns its id
func CreateTestPost(t *testing.T, conn *sql.DB, title string) int64 {
	t.Helper()

	id, err := db.InsertReturningID(context.Background(), conn, db.SQLite, `
		INSERT INTO ps_post (title, site, problem_number, link, level, language, solution, content_md, is_solved, created_at)
		VALUES ($1, 'BOJ', '1000', 'https://www.acmicpc.net/problem/1000', 'Bronze V', 'Go', 'print a+b', '# A+B', $2, $3)
	`, title, true, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return id
}

// SampleAnalyzeResult is a small analysis payload with one question of each kind
func SampleAnalyzeResult() models.AnalyzeResult {
	zero, one, two := 0, 1, 2
	s1, s2, s3 := 1.0, 2.0, 3.0
	return models.AnalyzeResult{
		Meta: models.AnalyzeMeta{FormID: "form-1", Title: "Team survey", AnalyzedResponses: 4},
		Summaries: []models.QuestionSummary{
			{
				QuestionID:    "q1",
				QuestionTitle: "Favorite lunch",
				Type:          models.TypeChoice,
				AllOptions: []models.AllOption{
					{Label: "Pizza", Order: &zero},
					{Label: "Sushi", Order: &one},
					{Label: "Tacos", Order: &two},
				},
				Options: []models.OptionStat{
					{Label: "Sushi", Count: 3, Rate: 75},
					{Label: "Pizza", Count: 1, Rate: 25},
				},
			},
			{
				QuestionID:    "q2",
				QuestionTitle: "Satisfaction",
				Type:          models.TypeScale,
				AllOptions: []models.AllOption{
					{Label: "1 (bad)", Order: &zero, Score: &s1},
					{Label: "2", Order: &one, Score: &s2},
					{Label: "3 (good)", Order: &two, Score: &s3},
				},
				Options: []models.OptionStat{
					{Label: "1 (bad)", Count: 1, Rate: 25},
					{Label: "2", Count: 0, Rate: 0},
					{Label: "3 (good)", Count: 3, Rate: 75},
				},
			},
			{
				QuestionID:    "q3",
				QuestionTitle: "Comments",
				Type:          models.TypeText,
				Options:       []models.OptionStat{},
				Text:          &models.TextStat{Count: 2, Samples: []string{"more sushi", "fine"}},
			},
		},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// DecodeJSON decodes the response body without failing the test, for use
// from goroutines where t.Fatal is not allowed
func DecodeJSON(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(w.Body).Decode(v)
}
