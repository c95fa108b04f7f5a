// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// FormListItem is one Google Form found in the user's Drive.
type FormListItem struct {
	FormID       string `json:"formId"`
	Name         string `json:"name"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// FormDetail is a normalized form definition.
// Grid rows are flattened into individual questions.
type FormDetail struct {
	FormID    string         `json:"formId"`
	Title     string         `json:"title"`
	Questions []FormQuestion `json:"questions"`
}

type FormQuestion struct {
	QuestionID string   `json:"questionId"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
}

// FormResponses is one page of responses keyed by question ID.
type FormResponses struct {
	FormID        string         `json:"formId"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
	Responses     []FormResponse `json:"responses"`
}

type FormResponse struct {
	ResponseID        string            `json:"responseId"`
	CreateTime        string            `json:"createTime,omitempty"`
	LastSubmittedTime string            `json:"lastSubmittedTime,omitempty"`
	Answers           map[string]Answer `json:"answers"`
}

type Answer struct {
	Values []string     `json:"values"`
	Files  []AnswerFile `json:"files"`
}

type AnswerFile struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}
