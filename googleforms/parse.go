// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package googleforms

import (
	"strconv"
	"strings"

	"github.com/elfaka/site/models"
)

const (
	noFormTitle     = "(no title)"
	noQuestionTitle = "(no question title)"
	noGridTitle     = "(grid)"
	noRowTitle      = "(row)"
)

func parseForm(formID string, f form) models.FormDetail {
	title := noFormTitle
	if f.Info != nil && f.Info.Title != "" {
		title = f.Info.Title
	}

	questions := make([]models.FormQuestion, 0, len(f.Items))
	for _, it := range f.Items {
		switch {
		case it.QuestionItem != nil && it.QuestionItem.Question != nil:
			questions = append(questions, parseQuestion(*it.QuestionItem.Question, titleOr(it.Title, noQuestionTitle)))
		case it.QuestionGroupItem != nil:
			questions = append(questions, flattenGrid(*it.QuestionGroupItem, titleOr(it.Title, noGridTitle))...)
		}
	}

	return models.FormDetail{FormID: formID, Title: title, Questions: questions}
}

func parseQuestion(q question, title string) models.FormQuestion {
	fq := models.FormQuestion{QuestionID: q.QuestionID, Title: title, Options: []string{}}

	switch {
	case q.ChoiceQuestion != nil:
		fq.Type = choiceType(q.ChoiceQuestion.Type)
		fq.Options = optionValues(q.ChoiceQuestion)
	case q.TextQuestion != nil, q.DateQuestion != nil, q.TimeQuestion != nil:
		fq.Type = models.TypeText
	case q.ScaleQuestion != nil:
		fq.Type = models.TypeScale
		fq.Options = scaleOptions(*q.ScaleQuestion)
	default:
		fq.Type = models.TypeUnknown
	}
	return fq
}

// flattenGrid turns each grid row into a question sharing the column options.
func flattenGrid(g questionGroupItem, groupTitle string) []models.FormQuestion {
	options := []string{}
	typ := models.TypeChoice
	if g.Grid != nil && g.Grid.Columns != nil {
		options = optionValues(g.Grid.Columns)
		typ = choiceType(g.Grid.Columns.Type)
	}

	out := make([]models.FormQuestion, 0, len(g.Questions))
	for _, row := range g.Questions {
		rowTitle := noRowTitle
		if row.RowQuestion != nil {
			rowTitle = titleOr(row.RowQuestion.Title, noRowTitle)
		}
		out = append(out, models.FormQuestion{
			QuestionID: row.QuestionID,
			Title:      groupTitle + " - " + rowTitle,
			Type:       typ,
			Options:    options,
		})
	}
	return out
}

// scaleOptions lists one label per step from low to high. The end points carry
// their labels, e.g. "1 (bad)". The API omits a zero low bound, so a missing low
// reads as 1.
func scaleOptions(s scaleQuestion) []string {
	low := 1
	if s.Low != nil {
		low = *s.Low
	}
	high := low
	if s.High != nil {
		high = *s.High
	}

	var options []string
	for i := low; i <= high; i++ {
		label := strconv.Itoa(i)
		switch {
		case i == low && strings.TrimSpace(s.LowLabel) != "":
			label += " (" + s.LowLabel + ")"
		case i == high && strings.TrimSpace(s.HighLabel) != "":
			label += " (" + s.HighLabel + ")"
		}
		options = append(options, label)
	}
	if options == nil {
		return []string{}
	}
	return options
}

func choiceType(apiType string) string {
	switch strings.ToUpper(apiType) {
	case "CHECKBOX", "CHECK_BOX":
		return models.TypeChoiceMulti
	default:
		return models.TypeChoice
	}
}

func optionValues(c *choiceQuestion) []string {
	values := make([]string, 0, len(c.Options))
	for _, o := range c.Options {
		if o.Value != nil {
			values = append(values, *o.Value)
		}
	}
	return values
}

func parseResponse(r formResponse) models.FormResponse {
	out := models.FormResponse{
		ResponseID:        r.ResponseID,
		CreateTime:        r.CreateTime,
		LastSubmittedTime: r.LastSubmittedTime,
		Answers:           make(map[string]models.Answer, len(r.Answers)),
	}
	for qid, a := range r.Answers {
		ans := models.Answer{Values: []string{}, Files: []models.AnswerFile{}}
		if a.TextAnswers != nil {
			for _, ta := range a.TextAnswers.Answers {
				if ta.Value != nil {
					ans.Values = append(ans.Values, *ta.Value)
				}
			}
		}
		if a.FileUploadAnswers != nil {
			for _, fa := range a.FileUploadAnswers.Answers {
				ans.Files = append(ans.Files, models.AnswerFile{
					FileID:   fa.FileID,
					FileName: fa.FileName,
					MimeType: fa.MimeType,
				})
			}
		}
		out.Answers[qid] = ans
	}
	return out
}

func titleOr(title *string, fallback string) string {
	if title == nil {
		return fallback
	}
	return *title
}
