// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads a .env file first so local development does not need exported
variables. Values already in the environment are kept.

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite, postgres, mysql)
	-static          Built web app directory
	-origin          Allowed CORS origin
	-session-secret  Session cookie secret
	-lostark-key     Lost Ark API key
	-analyze-limit   Default responses per analysis
	-log-level       debug, info, warn, error
	-log-format      text or json

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p (default 3318)
	DATABASE_URL          → -d (default site.db for sqlite)
	DATABASE_TYPE         → -t (default sqlite)
	SESSION_SECRET        → -session-secret
	LOSTARK_API_KEY       → -lostark-key
	STATIC_DIR            → -static
	ALLOWED_ORIGIN        → -origin
	ANALYZE_LIMIT         → -analyze-limit (default 200)
	LOG_LEVEL, LOG_FORMAT → -log-level, -log-format

Environment only:

	TEXT_SAMPLE_LIMIT      free-text samples per question (default 20)
	SURVEY_LOCALE          option label collation (default ko)
	UPSTREAM_TIMEOUT       Google and Lost Ark request timeout (default 10s)
	LOSTARK_BASE_URL       override for tests and proxies
	GOOGLE_FORMS_BASE_URL
	GOOGLE_DRIVE_BASE_URL

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - DATABASE_URL is missing for postgres or mysql
  - DATABASE_TYPE is not one of the supported drivers
  - a numeric or duration variable does not parse
*/
package cliparse
