// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase to match the web client.

# Survey Types

  - AnalyzeResult: meta plus one QuestionSummary per question
  - QuestionSummary: allOptions (defined), options (observed), text samples
  - FormListItem, FormDetail, FormQuestion: normalized Google Forms data
  - FormResponses, FormResponse, Answer: one page of responses

Question types:

	TypeChoice      = "CHOICE"
	TypeChoiceMulti = "CHOICE_MULTI"
	TypeScale       = "SCALE"
	TypeText        = "TEXT"
	TypeUnknown     = "UNKNOWN"

# Posts

  - PsPost, PsPostRequest: problem-solving posts
  - Page[T]: paged list with content, totalElements, totalPages, first, last

# Sessions

  - Session: signed-in user (access token never serialized)
  - CreateSessionRequest, CreateSessionResponse, MeResponse

# Errors

  - ErrorResponse: error, message
*/
package models
