// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elfaka/site/middleware"
	"github.com/elfaka/site/models"
	"github.com/elfaka/site/testutil"
)

type stubForms struct{}

func (stubForms) ListForms(ctx context.Context, token string) ([]models.FormListItem, error) {
	return []models.FormListItem{{FormID: "form-1", Name: "Lunch"}}, nil
}

func (stubForms) GetForm(ctx context.Context, token, formID string) (models.FormDetail, error) {
	return models.FormDetail{FormID: formID, Title: "Lunch", Questions: []models.FormQuestion{}}, nil
}

func (stubForms) ListResponses(ctx context.Context, token, formID string, pageSize int, pageToken string) (models.FormResponses, error) {
	return models.FormResponses{FormID: formID, Responses: []models.FormResponse{}}, nil
}

type stubLostArk struct{}

func (stubLostArk) CharacterInfo(ctx context.Context, name string) (json.RawMessage, error) {
	return json.RawMessage(`{"name":"` + name + `"}`), nil
}

func newTestRouter(t *testing.T) (http.Handler, *http.Cookie) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cookie := testutil.CreateTestSession(t, db, cfg, "Alice", "token-a")
	return NewRouter(db, cfg, Clients{Forms: stubForms{}, LostArk: stubLostArk{}}), cookie
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request ID header on the response")
	}
}

func TestRootEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "elfaka site API"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	h, cookie := newTestRouter(t)

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/api/ping", http.StatusOK},
		{"GET", "/api/lostark/character-info?name=a", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusOK},
		{"POST", "/api/auth/session", http.StatusBadRequest},
		{"GET", "/api/forms", http.StatusOK},
		{"GET", "/api/forms/form-1", http.StatusOK},
		{"GET", "/api/forms/form-1/responses", http.StatusOK},
		{"GET", "/api/forms/form-1/analyze", http.StatusOK},
		{"GET", "/api/forms/form-1/report", http.StatusOK},
		{"POST", "/api/json/format", http.StatusBadRequest},
		{"GET", "/api/posts", http.StatusOK},
		{"POST", "/api/posts", http.StatusBadRequest},
		{"GET", "/api/posts/1", http.StatusNotFound},
		{"PUT", "/api/posts/1", http.StatusBadRequest},
		{"DELETE", "/api/posts/1", http.StatusNotFound},

		// Logout last: it invalidates the cookie used above
		{"POST", "/api/auth/logout", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d. Body: %s", tc.expectedStatus, tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/forms"},
		{"PATCH", "/api/posts/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	h, cookie := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/forms/abc-123", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	var form models.FormDetail
	if err := json.NewDecoder(w.Body).Decode(&form); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if form.FormID != "abc-123" {
		t.Errorf("Expected formId 'abc-123', got '%s'", form.FormID)
	}
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/posts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin to be reflected, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Expected no credentials without a configured origin, got %q", got)
	}
}
