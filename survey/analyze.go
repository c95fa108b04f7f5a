// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"sort"
	"strings"

	"github.com/elfaka/site/models"
)

// DefaultTextSampleLimit caps the free-text samples kept per question.
const DefaultTextSampleLimit = 20

type AnalyzeOptions struct {
	TextSampleLimit int
}

// Analyze aggregates a page of responses per question of form.
//
// Choice and scale questions get option counts and rates; rates are percent of
// the respondents who answered that question, rounded to two decimals. Scale
// questions list every defined option (zero-filled) in definition order and match
// answers by their leading number. Choice questions list observed values by
// count, highest first. Everything else is summarized as free text.
func Analyze(form models.FormDetail, responses []models.FormResponse, opts AnalyzeOptions) models.AnalyzeResult {
	limit := opts.TextSampleLimit
	if limit <= 0 {
		limit = DefaultTextSampleLimit
	}

	summaries := make([]models.QuestionSummary, 0, len(form.Questions))
	for _, q := range form.Questions {
		values, answered := collectValues(q.QuestionID, responses)

		switch q.Type {
		case models.TypeScale:
			summaries = append(summaries, models.QuestionSummary{
				QuestionID:    q.QuestionID,
				QuestionTitle: q.Title,
				Type:          q.Type,
				AllOptions:    definedOptions(q.Options, true),
				Options:       scaleStats(q.Options, values, answered),
			})

		case models.TypeChoice, models.TypeChoiceMulti:
			stats := choiceStats(values, answered)
			summaries = append(summaries, models.QuestionSummary{
				QuestionID:    q.QuestionID,
				QuestionTitle: q.Title,
				Type:          q.Type,
				AllOptions:    withObserved(definedOptions(q.Options, false), stats),
				Options:       stats,
			})

		default:
			samples := values
			if len(samples) > limit {
				samples = samples[:limit]
			}
			summaries = append(summaries, models.QuestionSummary{
				QuestionID:    q.QuestionID,
				QuestionTitle: q.Title,
				Type:          q.Type,
				Options:       []models.OptionStat{},
				Text: &models.TextStat{
					Count:   len(values),
					Samples: append([]string{}, samples...),
				},
			})
		}
	}

	return models.AnalyzeResult{
		Meta: models.AnalyzeMeta{
			FormID:            form.FormID,
			Title:             form.Title,
			AnalyzedResponses: len(responses),
		},
		Summaries: summaries,
	}
}

// collectValues gathers the trimmed, non-blank answer values for a question and
// counts the respondents with at least one value.
func collectValues(questionID string, responses []models.FormResponse) (values []string, answered int) {
	for _, r := range responses {
		ans, ok := r.Answers[questionID]
		if !ok {
			continue
		}
		hasAny := false
		for _, v := range ans.Values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			hasAny = true
			values = append(values, v)
		}
		if hasAny {
			answered++
		}
	}
	return values, answered
}

func scaleStats(options, values []string, answered int) []models.OptionStat {
	counts := make(map[string]int)
	for _, v := range values {
		key := leadingDigits(v)
		if key == "" {
			continue
		}
		counts[key]++
	}

	stats := make([]models.OptionStat, 0, len(options))
	for _, opt := range options {
		key := leadingDigits(strings.TrimSpace(opt))
		if key == "" {
			key = opt
		}
		count := counts[key]
		stats = append(stats, models.OptionStat{
			Label: opt,
			Count: count,
			Rate:  rate(count, answered),
		})
	}
	return stats
}

func choiceStats(values []string, answered int) []models.OptionStat {
	counts := make(map[string]int)
	var seen []string
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			seen = append(seen, v)
		}
		counts[v]++
	}

	// Stable so that ties keep first-seen order
	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})

	stats := make([]models.OptionStat, 0, len(seen))
	for _, label := range seen {
		stats = append(stats, models.OptionStat{
			Label: label,
			Count: counts[label],
			Rate:  rate(counts[label], answered),
		})
	}
	return stats
}

// definedOptions converts a question's option labels into AllOption entries
// ordered by their position. Scale options also get a numeric score.
func definedOptions(labels []string, scored bool) []models.AllOption {
	if len(labels) == 0 {
		return nil
	}
	out := make([]models.AllOption, 0, len(labels))
	for i, label := range labels {
		order := i
		opt := models.AllOption{Label: label, Order: &order}
		if scored {
			if n, ok := ExtractNumeric(label); ok {
				opt.Score = &n
			}
		}
		out = append(out, opt)
	}
	return out
}

func rate(count, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return round2(float64(count) * 100 / float64(answered))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// withObserved appends answered labels missing from the form definition,
// such as "Other" free-text, with no order so they sort after defined ones.
func withObserved(defined []models.AllOption, stats []models.OptionStat) []models.AllOption {
	if len(defined) == 0 {
		return defined
	}
	known := make(map[string]struct{}, len(defined))
	for _, o := range defined {
		known[o.Label] = struct{}{}
	}
	for _, s := range stats {
		if _, ok := known[s.Label]; ok {
			continue
		}
		known[s.Label] = struct{}{}
		defined = append(defined, models.AllOption{Label: s.Label})
	}
	return defined
}
