// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "strings"

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ExcelClipboard joins up to max samples with newlines so that pasting into a
// spreadsheet puts one sample per row. max <= 0 means no limit.
//
// Note a sample that itself contains a newline spans several rows.
func ExcelClipboard(samples []string, max int) string {
	if max > 0 && len(samples) > max {
		samples = samples[:max]
	}
	lines := make([]string, len(samples))
	for i, s := range samples {
		lines[i] = newlineNormalizer.Replace(s)
	}
	return strings.Join(lines, "\n")
}
