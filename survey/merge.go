// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/elfaka/site/models"
)

// orderSentinel sorts options without an explicit order after all that have one.
const orderSentinel = 999999

// DefaultLocale is the collation locale for option labels.
var DefaultLocale = language.Korean

// Merger merges defined options with observed statistics.
// The zero value collates labels in DefaultLocale.
type Merger struct {
	Locale language.Tag
}

// MergeOptions merges using DefaultLocale collation.
func MergeOptions(defined []models.AllOption, observed []models.OptionStat) []MergedOption {
	return Merger{}.Merge(defined, observed)
}

// Merge returns one entry per defined option, with count and rate taken from
// the observed statistic of the same label (0 when absent). When no options are
// defined the observed statistics are returned as-is, in their original order.
// Neither input is modified.
func (m Merger) Merge(defined []models.AllOption, observed []models.OptionStat) []MergedOption {
	if len(defined) == 0 {
		merged := make([]MergedOption, 0, len(observed))
		for _, s := range observed {
			merged = append(merged, MergedOption{
				Label: s.Label,
				Score: scoreOf(nil, s.Label),
				Count: s.Count,
				Rate:  s.Rate,
			})
		}
		return merged
	}

	byLabel := make(map[string]models.OptionStat, len(observed))
	for _, s := range observed {
		byLabel[s.Label] = s
	}

	merged := make([]MergedOption, 0, len(defined))
	for _, o := range defined {
		opt := MergedOption{
			Label: o.Label,
			Order: copyInt(o.Order),
			Score: scoreOf(o.Score, o.Label),
		}
		if hit, ok := byLabel[o.Label]; ok {
			opt.Count = hit.Count
			opt.Rate = hit.Rate
		}
		merged = append(merged, opt)
	}

	col := collate.New(m.locale())
	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]

		// 1. Definition order
		ao, bo := orderKey(a.Order), orderKey(b.Order)
		if ao != bo {
			return ao < bo
		}

		// 2. Scale score, only when both sides have one
		if a.Score != nil && b.Score != nil && *a.Score != *b.Score {
			return *a.Score < *b.Score
		}

		// 3. Label in survey locale
		return col.CompareString(a.Label, b.Label) < 0
	})

	return merged
}

func (m Merger) locale() language.Tag {
	if m.Locale == language.Und {
		return DefaultLocale
	}
	return m.Locale
}

func orderKey(order *int) int {
	if order == nil {
		return orderSentinel
	}
	return *order
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
