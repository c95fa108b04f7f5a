// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session cookies and the session store.

# Session Cookies

A session cookie carries the session id and an HMAC-SHA256 signature:

	value := auth.SignSession(sessionID, secret)
	id, err := auth.VerifySession(value, secret)

The signature is URL-safe base64 encoded without padding. A cookie that does
not verify is rejected before the database is consulted.

# Session IDs

Session ids are random 24-byte (192-bit) secrets:

	id, err := auth.NewSessionID()

# Session Store

Store keeps sessions in the user_session table together with the Google access
token used for Forms and Drive calls:

	store := auth.NewStore(conn, cfg.DatabaseType)
	sess, err := store.Create(ctx, name, accessToken, ttl)
	sess, err = store.Get(ctx, id)   // ErrInvalidSession when unknown or expired
	err = store.Delete(ctx, id)

The sign-in flow with Google itself happens outside this server; its callback
posts the resulting name and token to POST /api/auth/session.
*/
package auth
