// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"regexp"
	"strconv"
)

var numericPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// ExtractNumeric returns the first signed integer or decimal found in label.
// Labels like "1 (very dissatisfied)" yield 1; labels without digits report ok=false.
func ExtractNumeric(label string) (value float64, ok bool) {
	m := numericPattern.FindString(label)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// scoreOf resolves an option score: explicit score first, then the label.
func scoreOf(explicit *float64, label string) *float64 {
	if explicit != nil {
		s := *explicit
		return &s
	}
	if n, ok := ExtractNumeric(label); ok {
		return &n
	}
	return nil
}

// leadingDigits returns the run of ASCII digits at the start of the trimmed
// string, e.g. "10 (very satisfied)" -> "10". Empty when s does not start with a digit.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
