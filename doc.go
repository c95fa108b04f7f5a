// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the elfaka site backend.

The server hosts the built single-page frontend and a small JSON API: a Lost
Ark armory proxy, Google Forms listing and survey analysis, a JSON formatter
and problem-solving (PS) posts.

# Starting the Server

The server reads flags, then environment variables, then a .env file in the
working directory:

	SESSION_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-secret change-me

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - DATABASE_URL (-d): DSN for the chosen driver (default: site.db)
  - LOSTARK_API_KEY (-lostark-key): Lost Ark Developer API key
  - STATIC_DIR (-static): Frontend build directory
  - ALLOWED_ORIGIN (-origin): CORS origin for a separately served frontend
  - ANALYZE_LIMIT (-analyze-limit): Default responses per analysis (200)
  - LOG_LEVEL, LOG_FORMAT (-log-level, -log-format): slog level and text|json

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using gorilla/mux
  - middleware: Request IDs, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session ids, cookie signing and the session store
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing
  - survey: Option merging, scale statistics and question views
  - googleforms, lostark: Upstream API clients
  - jsonfmt: JSON prettify/minify

The formstat command in cmd/formstat renders analysis results in a terminal.

See package documentation for each component.
*/
package main
