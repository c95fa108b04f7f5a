// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package upstream holds the error type shared by the clients that call
// third-party HTTP APIs.
package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUpstream matches every *Error with errors.Is.
var ErrUpstream = errors.New("upstream request failed")

// maxBody bounds how much of an error body is kept.
const maxBody = 4 << 10

// Error is a non-2xx reply from an upstream API.
type Error struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error { return ErrUpstream }

// Check returns nil for a 2xx response and an *Error otherwise.
// The body is read (up to a few KiB) but not closed.
func Check(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	return &Error{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
