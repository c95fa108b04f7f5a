// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Question type tags emitted by the forms parser
const (
	TypeChoice      = "CHOICE"
	TypeChoiceMulti = "CHOICE_MULTI"
	TypeScale       = "SCALE"
	TypeText        = "TEXT"
	TypeUnknown     = "UNKNOWN"
)

// AnalyzeResult is the per-form analysis payload consumed by the survey pipeline.
type AnalyzeResult struct {
	Meta      AnalyzeMeta       `json:"meta"`
	Summaries []QuestionSummary `json:"summaries"`
}

type AnalyzeMeta struct {
	FormID            string `json:"formId"`
	Title             string `json:"title"`
	AnalyzedResponses int    `json:"analyzedResponses"`
}

// QuestionSummary holds the aggregated result for one question.
// Options is used by choice and scale questions, Text by free text ones.
type QuestionSummary struct {
	QuestionID    string       `json:"questionId"`
	QuestionTitle string       `json:"questionTitle"`
	Type          string       `json:"type"`
	AllOptions    []AllOption  `json:"allOptions,omitempty"`
	Options       []OptionStat `json:"options"`
	Text          *TextStat    `json:"text,omitempty"`
}

// AllOption is an option from the question's static definition.
// It exists whether or not anyone selected it.
type AllOption struct {
	Label string   `json:"label"`
	Order *int     `json:"order,omitempty"`
	Value *string  `json:"value,omitempty"`
	Score *float64 `json:"score,omitempty"`
}

// OptionStat is the observed selection count and rate (percent) for one option.
type OptionStat struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

type TextStat struct {
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}
