// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the site backend.

# Handler Types

Each handler is a struct holding its dependencies:

  - HealthHandler: Health check and ping
  - AuthHandler: Session cookie create, lookup and logout
  - FormsHandler: Google Forms listing, responses and analysis
  - LostArkHandler: Lost Ark armory proxy
  - JSONFormatHandler: JSON prettify and minify
  - PostHandler: Problem-solving post CRUD
  - SPAHandler: Static frontend with index.html fallback

Handlers are created via constructor functions:

	postHandler := handlers.NewPostHandler(db, cfg)

# Sessions

A session is a database row keyed by a random id. The cookie carries the id
and its HMAC, so forged cookies are rejected before the database is read.
Forms endpoints answer 401 without a valid session and use the session's
access token for the upstream calls.

# Upstream Errors

Failed upstream calls map to 404 when the upstream answered 404, 504 on
timeout and 502 otherwise.

# Analysis

Analyze fetches the form and the first page of up to limit responses
(default AnalyzeLimit, clamped to 1..500) and aggregates them:

	result := survey.Analyze(form, page.Responses, opts)

Report runs the same analysis through survey.BuildReport.
*/
package handlers
