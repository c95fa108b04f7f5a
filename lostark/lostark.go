// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package lostark is a thin client for the Lost Ark Developer API armory
// endpoint. Responses are passed through without decoding.
package lostark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elfaka/site/upstream"
)

const DefaultBaseURL = "https://developer-lostark.game.onstove.com"

// maxBody bounds the armory payload; full armories are a few hundred KiB.
const maxBody = 8 << 20

var (
	ErrEmptyName = errors.New("character name is required")
	ErrNoAPIKey  = errors.New("lost ark api key is not configured")
	// ErrNotFound is returned when the API answers with a null body,
	// which is how it reports an unknown character.
	ErrNotFound = errors.New("character not found")
)

type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(opts Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		http:    opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}
	return c
}

// CharacterInfo returns the raw armory JSON for the named character.
func (c *Client) CharacterInfo(ctx context.Context, name string) (json.RawMessage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	endpoint := c.baseURL + "/armories/characters/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lostark request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := upstream.Check("lostark", resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read lostark response: %w", err)
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("lostark returned invalid json")
	}
	return json.RawMessage(trimmed), nil
}
