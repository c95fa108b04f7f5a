// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

RequestID reads X-Request-ID or generates a UUID, stores it in the request
context and echoes it on the response:

	id := middleware.GetRequestID(r.Context())

# Request Logging

WithLogging logs one line per request with method, path, status, bytes,
duration_ms, remote and request_id. 5xx responses log at error level.

	router.Use(middleware.RequestID, middleware.WithLogging)

NewLogger builds the text or JSON slog logger installed at startup.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(router),
	}

An empty origin reflects the caller, for the Vite dev server.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at 1 MiB):

	var req models.PsPostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
