// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package jsonfmt pretty-prints and minifies JSON documents for the JSON
// formatter page.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	ModePrettify = "prettify"
	ModeMinify   = "minify"

	DefaultIndent = 2
)

// Error codes reported in Response.Error.
const (
	CodeEmptyInput    = "EMPTY_INPUT"
	CodeInvalidMode   = "INVALID_MODE"
	CodeInvalidIndent = "INVALID_INDENT"
	CodeInvalidJSON   = "INVALID_JSON"
)

type Request struct {
	Input       string `json:"input"`
	Mode        string `json:"mode,omitempty"`
	Indent      *int   `json:"indent,omitempty"`
	SortKeys    bool   `json:"sortKeys,omitempty"`
	EnsureASCII bool   `json:"ensureAscii,omitempty"`
}

type Response struct {
	OK        bool   `json:"ok"`
	Mode      string `json:"mode,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Stats     *Stats `json:"stats,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Stats lengths are counted in characters, not bytes.
type Stats struct {
	InputLength  int `json:"inputLength"`
	OutputLength int `json:"outputLength"`
}

// Error describes why the input was rejected. Line and Column are 1-based and
// only set for INVALID_JSON.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

// Format validates req and formats its input.
// Failures are reported in the response, never as a Go error.
func Format(req Request) Response {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return fail(CodeEmptyInput, "input is empty")
	}

	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = ModePrettify
	}
	if mode != ModePrettify && mode != ModeMinify {
		return fail(CodeInvalidMode, "mode must be prettify or minify")
	}

	indent := DefaultIndent
	if req.Indent != nil {
		indent = *req.Indent
	}
	if indent != 2 && indent != 4 {
		return fail(CodeInvalidIndent, "indent must be 2 or 4")
	}

	out, err := render([]byte(input), mode, strings.Repeat(" ", indent), req.SortKeys)
	if err != nil {
		lead := len(req.Input) - len(strings.TrimLeftFunc(req.Input, unicode.IsSpace))
		return invalidJSON(req.Input, lead, err)
	}
	if req.EnsureASCII {
		out = escapeNonASCII(out)
	}

	formatted := string(out)
	return Response{
		OK:        true,
		Mode:      mode,
		Formatted: formatted,
		Stats: &Stats{
			InputLength:  utf8.RuneCountInString(req.Input),
			OutputLength: utf8.RuneCountInString(formatted),
		},
	}
}

// render keeps the input key order unless sortKeys is set.
func render(src []byte, mode, indent string, sortKeys bool) ([]byte, error) {
	if err := checkSingleValue(src); err != nil {
		return nil, err
	}

	if sortKeys {
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if mode == ModePrettify {
			enc.SetIndent("", indent)
		}
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}

	var buf bytes.Buffer
	var err error
	if mode == ModeMinify {
		err = json.Compact(&buf, src)
	} else {
		err = json.Indent(&buf, src, "", indent)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkSingleValue rejects input that is not exactly one JSON value.
func checkSingleValue(src []byte) error {
	if json.Valid(src) {
		return nil
	}
	var v json.RawMessage
	if err := json.Unmarshal(src, &v); err != nil {
		return err
	}
	return errors.New("invalid character after top-level value")
}

// invalidJSON locates err in input; lead is the whitespace trimmed from the
// front before parsing.
func invalidJSON(input string, lead int, err error) Response {
	resp := fail(CodeInvalidJSON, err.Error())

	var se *json.SyntaxError
	if errors.As(err, &se) {
		line, col := position(input, se.Offset+int64(lead))
		resp.Error.Line = &line
		resp.Error.Column = &col
	}
	return resp
}

// position converts the byte offset reported by encoding/json, which points
// just past the offending byte, into a 1-based line and column.
func position(input string, offset int64) (line, column int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(input) {
		pos = len(input)
	}
	prefix := input[:pos]
	line = strings.Count(prefix, "\n") + 1
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		prefix = prefix[i+1:]
	}
	return line, utf8.RuneCountInString(prefix) + 1
}

// escapeNonASCII replaces every non-ASCII character with a \uXXXX escape,
// using a surrogate pair outside the Basic Multilingual Plane. Valid JSON only
// has non-ASCII bytes inside strings, so this never changes the document.
func escapeNonASCII(src []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(src))
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		src = src[size:]
		if r < utf8.RuneSelf {
			buf.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&buf, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&buf, `\u%04x`, r)
	}
	return buf.Bytes()
}

func fail(code, message string) Response {
	return Response{OK: false, Error: &Error{Code: code, Message: message}}
}
