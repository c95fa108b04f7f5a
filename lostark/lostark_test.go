// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lostark

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elfaka/site/upstream"
)

func TestCharacterInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/armories/characters/버서커 1", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("accept"))
		w.Write([]byte(`{"ArmoryProfile":{"CharacterName":"버서커 1"}}` + "\n"))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, APIKey: "key"})
	body, err := c.CharacterInfo(context.Background(), " 버서커 1 ")

	require.NoError(t, err)
	assert.JSONEq(t, `{"ArmoryProfile":{"CharacterName":"버서커 1"}}`, string(body))
}

func TestCharacterInfo_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		apiKey  string
		char    string
		wantErr error
		code    int
	}{
		{name: "empty name", apiKey: "key", char: "  ", wantErr: ErrEmptyName},
		{name: "no api key", char: "x", wantErr: ErrNoAPIKey},
		{name: "null body", apiKey: "key", char: "x", status: 200, body: "null", wantErr: ErrNotFound},
		{name: "unauthorized", apiKey: "key", char: "x", status: 401, body: "denied", wantErr: upstream.ErrUpstream, code: 401},
		{name: "rate limited", apiKey: "key", char: "x", status: 429, wantErr: upstream.ErrUpstream, code: 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(Options{BaseURL: srv.URL, APIKey: tt.apiKey})
			_, err := c.CharacterInfo(context.Background(), tt.char)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.code, upstream.StatusCode(err))
		})
	}
}
