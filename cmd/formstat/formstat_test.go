// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/testutil"
	"github.com/elfaka/site/upstream"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeSample(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(testutil.SampleAnalyzeResult())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadResultFile(t *testing.T) {
	path := writeSample(t)

	fromFile, err := readResultFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "form-1", fromFile.Meta.FormID)
	assert.Len(t, fromFile.Summaries, 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fromStdin, err := readResultFile("-", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, fromFile, fromStdin)

	_, err = readResultFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)

	_, err = readResultFile("-", strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestFetchAnalysis(t *testing.T) {
	var gotCookie, gotPath, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		if c, err := r.Cookie(auth.CookieName); err == nil {
			gotCookie = c.Value
		}
		if gotCookie != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(testutil.SampleAnalyzeResult())
	}))
	defer srv.Close()

	result, err := fetchAnalysis(context.Background(), srv.Client(), srv.URL+"/", "form-1", "good", 50)
	require.NoError(t, err)
	assert.Equal(t, "/api/forms/form-1/analyze", gotPath)
	assert.Equal(t, "50", gotLimit)
	assert.Equal(t, "Team survey", result.Meta.Title)

	_, err = fetchAnalysis(context.Background(), srv.Client(), srv.URL, "form-1", "bad", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream.ErrUpstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode(err))
	assert.Empty(t, gotLimit)
}

func TestWriteSamples(t *testing.T) {
	result := testutil.SampleAnalyzeResult()

	var buf bytes.Buffer
	require.NoError(t, writeSamples(&buf, result, "q3", 0))
	assert.Equal(t, "more sushi\nfine\n", buf.String())

	buf.Reset()
	require.NoError(t, writeSamples(&buf, result, "q3", 1))
	assert.Equal(t, "more sushi\n", buf.String())

	assert.Error(t, writeSamples(&buf, result, "", 0))
	assert.Error(t, writeSamples(&buf, result, "q1", 0), "choice question has no text")
	assert.Error(t, writeSamples(&buf, result, "nope", 0))
}

func TestRenderCommand(t *testing.T) {
	path := writeSample(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", path, "--filter", "lunch", "--color", "no"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Favorite lunch")
	assert.NotContains(t, out.String(), "Satisfaction")
}

func TestViewOptionsValidation(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"render", "-", "--initial-show", "0"})
	rootCmd.SetIn(strings.NewReader(`{}`))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--initial-show")
}
