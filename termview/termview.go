// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package termview renders survey analysis results as terminal cards.
package termview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/survey"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	headingColor = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)

	badgeColors = map[survey.Category]*color.Color{
		survey.CategoryScale:   color.New(color.FgYellow, color.Bold),
		survey.CategoryChoice:  color.New(color.FgGreen, color.Bold),
		survey.CategoryText:    color.New(color.FgMagenta, color.Bold),
		survey.CategoryUnknown: color.New(color.FgWhite),
	}
)

// Options controls filtering and paging. Zero values use the survey defaults.
type Options struct {
	Filter     string
	Expanded   bool
	OptionShow int
	TextShow   int
	Locale     language.Tag
}

func (o Options) viewOptions() survey.ViewOptions {
	return survey.ViewOptions{
		OptionShow: o.OptionShow,
		TextShow:   o.TextShow,
		Expanded:   o.Expanded,
		Locale:     o.Locale,
	}
}

// Render writes one card per question of result to w.
func Render(w io.Writer, result models.AnalyzeResult, opts Options) error {
	report := survey.BuildReport(result, opts.Filter, opts.viewOptions())

	title := report.Meta.Title
	if title == "" {
		title = report.Meta.FormID
	}
	if _, err := titleColor.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := mutedColor.Fprintf(w, "%s responses, %d questions\n",
		humanize.Comma(int64(report.Meta.AnalyzedResponses)), len(report.Questions)); err != nil {
		return err
	}

	if len(report.Questions) == 0 {
		msg := "No questions."
		if report.Filter != "" {
			msg = fmt.Sprintf("No questions match %q.", report.Filter)
		}
		_, err := fmt.Fprintln(w, "\n"+msg)
		return err
	}

	for i, q := range report.Questions {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := renderQuestion(w, i+1, q); err != nil {
			return fmt.Errorf("render %s: %w", q.QuestionID, err)
		}
	}
	return nil
}

func renderQuestion(w io.Writer, n int, q survey.QuestionView) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", headingColor.Sprintf("%d. %s", n, q.Title), Badge(q.Category)); err != nil {
		return err
	}

	if q.Empty() {
		_, err := mutedColor.Fprintln(w, "  No responses")
		return err
	}

	if q.Category == survey.CategoryText {
		return renderText(w, q)
	}

	if q.Scale != nil {
		if _, err := fmt.Fprintf(w, "  %s\n", ScaleLine(q.Scale)); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Option", "Rate", "Count"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight}
	})

	data := make([][]string, 0, len(q.Options))
	for _, o := range q.Options {
		data = append(data, []string{
			o.Label,
			strconv.FormatFloat(o.Rate, 'f', 1, 64) + "%",
			humanize.Comma(int64(o.Count)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	return moreHint(w, q)
}

func renderText(w io.Writer, q survey.QuestionView) error {
	if _, err := mutedColor.Fprintf(w, "  %s answers\n", humanize.Comma(int64(q.Text.Count))); err != nil {
		return err
	}
	for _, s := range q.Text.Samples {
		line := strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
		if _, err := fmt.Fprintf(w, "  - %s\n", line); err != nil {
			return err
		}
	}
	return moreHint(w, q)
}

func moreHint(w io.Writer, q survey.QuestionView) error {
	if !q.HasMore {
		return nil
	}
	_, err := mutedColor.Fprintf(w, "  ... %d more (use --expand to show all)\n", q.Hidden)
	return err
}

// Badge returns the colored type tag shown next to a question title.
func Badge(c survey.Category) string {
	if !c.IsKnown() {
		return badgeColors[survey.CategoryUnknown].Sprintf("[%s]", c)
	}
	return badgeColors[c].Sprintf("[%s]", c)
}

// ScaleLine formats scale statistics as "n=12  mean=3.42  sd=1.05".
func ScaleLine(s *survey.ScaleStatistics) string {
	return fmt.Sprintf("n=%s  mean=%.2f  sd=%.2f", humanize.Comma(int64(s.N)), s.Mean, s.StandardDeviation)
}
