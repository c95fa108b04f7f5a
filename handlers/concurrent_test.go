// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/testutil"
)

// TestConcurrentPostCreation verifies that simultaneous creates each get a
// distinct id and none are lost
func TestConcurrentPostCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPostHandler(db, cfg)

	numWriters := 10

	var successCount atomic.Int32
	var wg sync.WaitGroup
	ids := make([]int64, numWriters)

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/posts", models.PsPostRequest{
				Title: fmt.Sprintf("Concurrent %d", idx),
				Site:  "BOJ",
			}, nil)
			w := httptest.NewRecorder()

			handler.CreatePost(w, req)

			if w.Code == http.StatusCreated {
				var id int64
				if err := testutil.DecodeJSON(w, &id); err == nil {
					ids[idx] = id
					successCount.Add(1)
				}
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numWriters {
		t.Errorf("Expected %d successful creates, got %d", numWriters, successCount.Load())
	}

	seen := make(map[int64]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("Duplicate post id %d", id)
		}
		seen[id] = true
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM ps_post").Scan(&count); err != nil {
		t.Fatalf("Failed to count posts: %v", err)
	}
	if count != numWriters {
		t.Errorf("Expected %d posts, got %d", numWriters, count)
	}
}

// TestConcurrentSessions verifies that sessions created in parallel all
// authenticate and do not leak into each other
func TestConcurrentSessions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(db, cfg)

	numUsers := 8
	cookies := make([]*http.Cookie, numUsers)

	var wg sync.WaitGroup
	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/auth/session", models.CreateSessionRequest{
				Name:        fmt.Sprintf("user-%d", idx),
				AccessToken: fmt.Sprintf("token-%d", idx),
			}, nil)
			w := httptest.NewRecorder()

			handler.CreateSession(w, req)

			for _, c := range w.Result().Cookies() {
				cookies[idx] = c
			}
		}(i)
	}
	wg.Wait()

	for i, c := range cookies {
		if c == nil {
			t.Fatalf("User %d got no cookie", i)
		}

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.AddCookie(c)
		w := httptest.NewRecorder()
		handler.Me(w, req)

		var resp models.MeResponse
		testutil.AssertJSON(t, w, &resp)
		if want := fmt.Sprintf("user-%d", i); resp.Name != want {
			t.Errorf("Expected %s, got %q", want, resp.Name)
		}
	}
}

// TestParallelReads verifies list and get requests do not block each other
// while writes are in flight
func TestParallelReads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPostHandler(db, cfg)

	for i := 0; i < 5; i++ {
		testutil.CreateTestPost(t, db, fmt.Sprintf("Seed %d", i))
	}

	var failures atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := httptest.NewRecorder()
			if idx%4 == 0 {
				handler.CreatePost(w, testutil.MakeRequest("POST", "/api/posts", models.PsPostRequest{Title: "More"}, nil))
				if w.Code != http.StatusCreated {
					failures.Add(1)
				}
				return
			}
			handler.ListPosts(w, httptest.NewRequest("GET", "/api/posts?size=3", nil))
			if w.Code != http.StatusOK {
				failures.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if n := failures.Load(); n != 0 {
		t.Errorf("Expected no failed requests, got %d", n)
	}
}
