// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(code int, body string) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(body))}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("svc", reply(http.StatusOK, "")))
	assert.NoError(t, Check("svc", reply(http.StatusNoContent, "")))

	err := Check("svc", reply(http.StatusForbidden, `{"error":"denied"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
	assert.Contains(t, err.Error(), "svc returned status 403")
}

func TestStatusCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("get form: %w", &Error{Service: "forms", StatusCode: 404})

	assert.Equal(t, 404, StatusCode(err))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
	assert.Equal(t, 0, StatusCode(nil))
}
