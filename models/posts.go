// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// PsPost is a problem-solving blog post.
type PsPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Site          string    `json:"site"`
	ProblemNumber string    `json:"problemNumber"`
	Link          string    `json:"link"`
	Level         string    `json:"level"`
	Language      string    `json:"language"`
	Solution      string    `json:"solution"`
	ContentMd     string    `json:"contentMd"`
	IsSolved      bool      `json:"isSolved"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PsPostRequest struct {
	Title         string `json:"title"`
	Site          string `json:"site"`
	ProblemNumber string `json:"problemNumber"`
	Link          string `json:"link"`
	Level         string `json:"level"`
	Language      string `json:"language"`
	Solution      string `json:"solution"`
	ContentMd     string `json:"contentMd"`
}

// Page mirrors the paged list shape the frontend expects.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// NewPage fills in the derived paging fields.
func NewPage[T any](content []T, total int64, number, size int) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        number,
		Size:          size,
		First:         number == 0,
		Last:          number+1 >= totalPages,
		Empty:         len(content) == 0,
	}
}
