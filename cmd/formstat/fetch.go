// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elfaka/site/auth"
	"github.com/elfaka/site/models"
	"github.com/elfaka/site/termview"
	"github.com/elfaka/site/upstream"
)

// fetchCmd pulls a live analysis from the site backend and renders it.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Analyze a form on the server and render the result.",
	Long: `Call GET /api/forms/{formId}/analyze on a running site backend and render it.

The session is the value of the session cookie from a signed-in browser.

Examples:
  formstat fetch --form 1FAIpQL... --session "$COOKIE"
  FORMSTAT_SERVER=https://elfaka.kr FORMSTAT_SESSION=... formstat fetch --form 1FAIpQL...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := viewOptions()
		if err != nil {
			return err
		}

		formID := viper.GetString("form")
		if formID == "" {
			return fmt.Errorf("--form is required")
		}
		session := viper.GetString("session")
		if session == "" {
			return fmt.Errorf("--session is required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		result, err := fetchAnalysis(ctx, http.DefaultClient, viper.GetString("server"), formID, session, viper.GetInt("limit"))
		if err != nil {
			return err
		}
		return termview.Render(cmd.OutOrStdout(), result, opts)
	},
}

// fetchAnalysis calls the analyze endpoint with the given session cookie.
func fetchAnalysis(ctx context.Context, client *http.Client, server, formID, session string, limit int) (models.AnalyzeResult, error) {
	endpoint := strings.TrimRight(server, "/") + "/api/forms/" + url.PathEscape(formID) + "/analyze"
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.AnalyzeResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: session})

	resp, err := client.Do(req)
	if err != nil {
		return models.AnalyzeResult{}, fmt.Errorf("analyze request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := upstream.Check("site", resp); err != nil {
		if upstream.StatusCode(err) == http.StatusUnauthorized {
			return models.AnalyzeResult{}, fmt.Errorf("session rejected, sign in again: %w", err)
		}
		return models.AnalyzeResult{}, err
	}

	return decodeResult(resp.Body)
}
