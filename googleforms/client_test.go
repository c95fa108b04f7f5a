// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package googleforms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/upstream"
)

const sampleForm = `{
  "formId": "f1",
  "info": {"title": "Team survey"},
  "items": [
    {"title": "Lunch?", "questionItem": {"question": {"questionId": "q1",
      "choiceQuestion": {"type": "RADIO", "options": [{"value": "Yes"}, {"value": "No"}, {"isOther": true}]}}}},
    {"title": "Toppings", "questionItem": {"question": {"questionId": "q2",
      "choiceQuestion": {"type": "CHECKBOX", "options": [{"value": "Cheese"}]}}}},
    {"title": "Why?", "questionItem": {"question": {"questionId": "q3", "textQuestion": {"paragraph": true}}}},
    {"title": "When?", "questionItem": {"question": {"questionId": "q4", "dateQuestion": {}}}},
    {"title": "Mood", "questionItem": {"question": {"questionId": "q5",
      "scaleQuestion": {"low": 1, "high": 5, "lowLabel": "bad", "highLabel": "great"}}}},
    {"questionItem": {"question": {"questionId": "q6", "ratingQuestion": {}}}},
    {"title": "Grid", "questionGroupItem": {
      "questions": [{"questionId": "g1", "rowQuestion": {"title": "Mon"}}, {"questionId": "g2", "rowQuestion": {}}],
      "grid": {"columns": {"type": "CHECK_BOX", "options": [{"value": "AM"}, {"value": "PM"}]}}}},
    {"title": "Section header", "pageBreakItem": {}}
  ]
}`

const sampleResponses = `{
  "responses": [
    {"responseId": "r1", "createTime": "2025-01-01T00:00:00Z", "lastSubmittedTime": "2025-01-01T00:01:00Z",
     "answers": {
       "q1": {"questionId": "q1", "textAnswers": {"answers": [{"value": "Yes"}]}},
       "q7": {"questionId": "q7", "fileUploadAnswers": {"answers": [{"fileId": "file1", "fileName": "a.png", "mimeType": "image/png"}]}}
     }}
  ],
  "nextPageToken": "next"
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{FormsBaseURL: srv.URL, DriveBaseURL: srv.URL + "/"})
}

func TestListForms(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, formsMimeQuery, r.URL.Query().Get("q"))
		assert.Equal(t, "files(id,name,modifiedTime)", r.URL.Query().Get("fields"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"files":[{"id":"f1","name":"Team survey","modifiedTime":"2025-01-02T03:04:05.000Z"}]}`))
	})

	forms, err := c.ListForms(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, []models.FormListItem{{FormID: "f1", Name: "Team survey", ModifiedTime: "2025-01-02T03:04:05.000Z"}}, forms)
}

func TestListForms_NoFiles(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	forms, err := c.ListForms(context.Background(), "tok")

	require.NoError(t, err)
	assert.NotNil(t, forms)
	assert.Empty(t, forms)
}

func TestGetForm(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forms/f1", r.URL.Path)
		w.Write([]byte(sampleForm))
	})

	detail, err := c.GetForm(context.Background(), "tok", "f1")
	require.NoError(t, err)

	assert.Equal(t, "f1", detail.FormID)
	assert.Equal(t, "Team survey", detail.Title)
	assert.Equal(t, []models.FormQuestion{
		{QuestionID: "q1", Title: "Lunch?", Type: models.TypeChoice, Options: []string{"Yes", "No"}},
		{QuestionID: "q2", Title: "Toppings", Type: models.TypeChoiceMulti, Options: []string{"Cheese"}},
		{QuestionID: "q3", Title: "Why?", Type: models.TypeText, Options: []string{}},
		{QuestionID: "q4", Title: "When?", Type: models.TypeText, Options: []string{}},
		{QuestionID: "q5", Title: "Mood", Type: models.TypeScale, Options: []string{"1 (bad)", "2", "3", "4", "5 (great)"}},
		{QuestionID: "q6", Title: "(no question title)", Type: models.TypeUnknown, Options: []string{}},
		{QuestionID: "g1", Title: "Grid - Mon", Type: models.TypeChoiceMulti, Options: []string{"AM", "PM"}},
		{QuestionID: "g2", Title: "Grid - (row)", Type: models.TypeChoiceMulti, Options: []string{"AM", "PM"}},
	}, detail.Questions)
}

func TestGetForm_NoTitle(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"formId":"f2"}`))
	})

	detail, err := c.GetForm(context.Background(), "tok", "f2")

	require.NoError(t, err)
	assert.Equal(t, "(no title)", detail.Title)
	assert.Empty(t, detail.Questions)
}

func TestGetForm_UpstreamError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
	})

	_, err := c.GetForm(context.Background(), "tok", "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream.ErrUpstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode(err))
}

func TestListResponses(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forms/f1/responses", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "abc", r.URL.Query().Get("pageToken"))
		w.Write([]byte(sampleResponses))
	})

	page, err := c.ListResponses(context.Background(), "tok", "f1", 10000, "abc")
	require.NoError(t, err)

	assert.Equal(t, "f1", page.FormID)
	assert.Equal(t, "next", page.NextPageToken)
	require.Len(t, page.Responses, 1)

	r := page.Responses[0]
	assert.Equal(t, "r1", r.ResponseID)
	assert.Equal(t, "2025-01-01T00:01:00Z", r.LastSubmittedTime)
	assert.Equal(t, []string{"Yes"}, r.Answers["q1"].Values)
	assert.Empty(t, r.Answers["q1"].Files)
	assert.Empty(t, r.Answers["q7"].Values)
	assert.Equal(t, []models.AnswerFile{{FileID: "file1", FileName: "a.png", MimeType: "image/png"}}, r.Answers["q7"].Files)
}

func TestListResponses_OmitsBlankToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("pageToken"))
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{}`))
	})

	page, err := c.ListResponses(context.Background(), "tok", "f1", 0, "  ")

	require.NoError(t, err)
	assert.NotNil(t, page.Responses)
	assert.Empty(t, page.Responses)
}

func TestClampPageSize(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {50, 50}, {500, 500}, {501, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPageSize(tt.in))
	}
}

func TestScaleOptions(t *testing.T) {
	zero := 0
	two := 2
	ten := 10

	assert.Equal(t, []string{"0 (no)", "1", "2 (yes)"}, scaleOptions(scaleQuestion{Low: &zero, High: &two, LowLabel: "no", HighLabel: "yes"}))
	assert.Equal(t, []string{"1", "2"}, scaleOptions(scaleQuestion{High: &two}), "missing low reads as 1")
	assert.Equal(t, []string{"1"}, scaleOptions(scaleQuestion{}))
	assert.Equal(t, []string{}, scaleOptions(scaleQuestion{Low: &ten, High: &two}))
	assert.Equal(t, []string{"1", "2"}, scaleOptions(scaleQuestion{High: &two, LowLabel: "  "}))
}
