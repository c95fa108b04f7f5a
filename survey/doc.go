// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey turns Google Forms analysis payloads into render-ready views.

# Aggregation

Analyze builds an AnalyzeResult from a form definition and a page of responses:

	result := survey.Analyze(form, responses, survey.AnalyzeOptions{TextSampleLimit: 20})

Rates use the number of respondents who answered the question as the
denominator, not the total number of responses.

# Option Merging

MergeOptions left-joins the defined options of a question over the observed
statistics, so options nobody picked still show up with a zero count:

	merged := survey.MergeOptions(q.AllOptions, q.Options)

Ordering is definition order, then numeric score, then label collation in the
survey locale (Korean by default).

# Scale Statistics

ComputeScaleStatistics returns the count-weighted mean and standard deviation
of the options that carry a numeric score, or nil when nobody answered.

# Views

BuildView and BuildReport combine classification, merging, statistics and the
"show more" Pager into the structures served by the report endpoint and printed
by the formstat CLI.
*/
package survey
