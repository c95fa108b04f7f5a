// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/elfaka/site/models"
)

// ViewOptions controls how questions are rendered.
// Zero values fall back to the package defaults.
type ViewOptions struct {
	OptionShow int
	TextShow   int
	Expanded   bool
	Locale     language.Tag
}

func (o ViewOptions) optionPager() Pager {
	n := o.OptionShow
	if n == 0 {
		n = DefaultOptionShow
	}
	return Pager{InitialShow: n, Expanded: o.Expanded}
}

func (o ViewOptions) textPager() Pager {
	n := o.TextShow
	if n == 0 {
		n = DefaultTextShow
	}
	return Pager{InitialShow: n, Expanded: o.Expanded}
}

// QuestionView is the render model for one question card.
type QuestionView struct {
	QuestionID string           `json:"questionId"`
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	Category   Category         `json:"category"`
	Options    []MergedOption   `json:"options,omitempty"`
	Total      int              `json:"total"`
	HasMore    bool             `json:"hasMore"`
	Hidden     int              `json:"hidden"`
	Scale      *ScaleStatistics `json:"scale,omitempty"`
	Text       *TextView        `json:"text,omitempty"`
}

// TextView holds the visible free-text samples.
type TextView struct {
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

// Empty reports whether the card has nothing to show.
func (v QuestionView) Empty() bool {
	if v.Category == CategoryText {
		return v.Text == nil || v.Text.Count == 0
	}
	return v.Total == 0
}

// BuildView classifies q and prepares the rows to render.
func BuildView(q models.QuestionSummary, opts ViewOptions) QuestionView {
	view := QuestionView{
		QuestionID: q.QuestionID,
		Title:      q.QuestionTitle,
		Type:       q.Type,
		Category:   ClassifyType(q.Type),
	}

	if view.Category == CategoryText {
		var samples []string
		count := 0
		if q.Text != nil {
			samples = q.Text.Samples
			count = q.Text.Count
		}
		pager := opts.textPager()
		view.Total = len(samples)
		view.HasMore = pager.HasMore(len(samples))
		view.Hidden = pager.Hidden(len(samples))
		view.Text = &TextView{
			Count:   count,
			Samples: append([]string{}, Page(samples, pager)...),
		}
		return view
	}

	merged := Merger{Locale: opts.Locale}.Merge(q.AllOptions, q.Options)
	if view.Category == CategoryScale {
		view.Scale = ComputeScaleStatistics(merged)
	}

	pager := opts.optionPager()
	view.Total = len(merged)
	view.HasMore = pager.HasMore(len(merged))
	view.Hidden = pager.Hidden(len(merged))
	view.Options = Page(merged, pager)
	return view
}

// Report is a filtered list of question views for one form.
type Report struct {
	Meta      models.AnalyzeMeta `json:"meta"`
	Filter    string             `json:"filter,omitempty"`
	Questions []QuestionView     `json:"questions"`
}

// BuildReport filters the summaries by title and builds a view for each.
func BuildReport(result models.AnalyzeResult, filter string, opts ViewOptions) Report {
	summaries := Filter(result.Summaries, filter)
	views := make([]QuestionView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, BuildView(s, opts))
	}
	return Report{
		Meta:      result.Meta,
		Filter:    strings.TrimSpace(filter),
		Questions: views,
	}
}

// Filter keeps the summaries whose title contains query, ignoring case.
// A blank query keeps everything.
func Filter(summaries []models.QuestionSummary, query string) []models.QuestionSummary {
	t := strings.ToLower(strings.TrimSpace(query))
	if t == "" {
		return summaries
	}
	out := make([]models.QuestionSummary, 0, len(summaries))
	for _, s := range summaries {
		if strings.Contains(strings.ToLower(s.QuestionTitle), t) {
			out = append(out, s)
		}
	}
	return out
}
