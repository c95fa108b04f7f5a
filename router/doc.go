// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the site backend.

# Route Registration

NewRouter builds a gorilla/mux router with all endpoints and wraps it in the
request ID, logging and CORS middleware:

	h := router.NewRouter(db, cfg, router.Clients{Forms: forms, LostArk: lostArk})

# Endpoints

Health:

	GET /health   - Database ping
	GET /api/ping - Liveness

Lost Ark:

	GET /api/lostark/character-info?name= - Armory passthrough

Session (cookie based):

	GET  /api/auth/me      - Current user or {authenticated:false}
	POST /api/auth/session - Create session from an access token
	POST /api/auth/logout  - Delete session

Google Forms (session required):

	GET /api/forms                      - Forms in the user's Drive
	GET /api/forms/{formId}             - Normalized form definition
	GET /api/forms/{formId}/responses   - One page of responses
	GET /api/forms/{formId}/analyze     - Per-question aggregation
	GET /api/forms/{formId}/report      - Rendered question cards

JSON:

	POST /api/json/format - Prettify or minify

Posts:

	GET    /api/posts?page=&size= - Paged list, newest first
	POST   /api/posts             - Create
	GET    /api/posts/{id}        - Read
	PUT    /api/posts/{id}        - Update
	DELETE /api/posts/{id}        - Delete

Everything else is served from the static frontend build.
*/
package router
