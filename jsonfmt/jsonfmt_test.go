// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jsonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indent(n int) *int { return &n }

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "prettify keeps key order",
			req:  Request{Input: `{"b":1,"a":[true,null]}`},
			want: "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}",
		},
		{
			name: "prettify with four spaces",
			req:  Request{Input: `{"a":{"b":1}}`, Indent: indent(4)},
			want: "{\n    \"a\": {\n        \"b\": 1\n    }\n}",
		},
		{
			name: "minify",
			req:  Request{Input: "{\n  \"a\" : [ 1, 2 ],\n  \"b\": \"x y\"\n}", Mode: "MINIFY"},
			want: `{"a":[1,2],"b":"x y"}`,
		},
		{
			name: "sort keys recursively",
			req:  Request{Input: `{"b":{"d":1,"c":2},"a":[{"z":1,"y":2}]}`, Mode: "minify", SortKeys: true},
			want: `{"a":[{"y":2,"z":1}],"b":{"c":2,"d":1}}`,
		},
		{
			name: "sort keys keeps number literals and html",
			req:  Request{Input: `{"n":1.50,"h":"<a&b>"}`, Mode: "minify", SortKeys: true},
			want: `{"h":"<a&b>","n":1.50}`,
		},
		{
			name: "ensure ascii",
			req:  Request{Input: `{"k":"한글 é 😀"}`, Mode: "minify", EnsureASCII: true},
			want: `{"k":"\ud55c\uae00 \u00e9 \ud83d\ude00"}`,
		},
		{
			name: "scalar document",
			req:  Request{Input: `  "hello"  `},
			want: `"hello"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Format(tt.req)
			require.True(t, resp.OK, "error: %+v", resp.Error)
			assert.Equal(t, tt.want, resp.Formatted)
			assert.Nil(t, resp.Error)
		})
	}
}

func TestFormat_ModeAndStats(t *testing.T) {
	resp := Format(Request{Input: ` {"k":"값"} `})

	require.True(t, resp.OK)
	assert.Equal(t, ModePrettify, resp.Mode)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 11, resp.Stats.InputLength)
	assert.Equal(t, 14, resp.Stats.OutputLength)
}

func TestFormat_Rejected(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code string
	}{
		{"empty", Request{Input: "   \n"}, CodeEmptyInput},
		{"bad mode", Request{Input: "{}", Mode: "beautify"}, CodeInvalidMode},
		{"bad indent", Request{Input: "{}", Indent: indent(3)}, CodeInvalidIndent},
		{"zero indent", Request{Input: "{}", Indent: indent(0)}, CodeInvalidIndent},
		{"syntax", Request{Input: `{"a":}`}, CodeInvalidJSON},
		{"trailing value", Request{Input: `{} {}`}, CodeInvalidJSON},
		{"truncated", Request{Input: `[1, 2`, SortKeys: true}, CodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Format(tt.req)
			assert.False(t, resp.OK)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
			assert.Empty(t, resp.Formatted)
			assert.Nil(t, resp.Stats)
		})
	}
}

func TestFormat_ErrorPosition(t *testing.T) {
	resp := Format(Request{Input: "{\n  \"a\": 1,\n  \"b\": x\n}"})

	require.NotNil(t, resp.Error)
	require.NotNil(t, resp.Error.Line)
	require.NotNil(t, resp.Error.Column)
	assert.Equal(t, 3, *resp.Error.Line)
	assert.Equal(t, 8, *resp.Error.Column)
}

func TestFormat_ErrorPositionAfterLeadingBlankLines(t *testing.T) {
	resp := Format(Request{Input: "\n\n  {\"a\": x}"})

	require.NotNil(t, resp.Error)
	require.NotNil(t, resp.Error.Line)
	require.NotNil(t, resp.Error.Column)
	assert.Equal(t, 3, *resp.Error.Line)
	assert.Equal(t, 9, *resp.Error.Column)
}

func TestPosition(t *testing.T) {
	line, col := position("abc", 1)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = position("ab\n가나x", 10)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)

	line, col = position("", 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
