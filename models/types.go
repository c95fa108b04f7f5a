package models

import "time"

// Request types

// CreateSessionRequest is posted by the sign-in callback once the user has
// authorized with Google.
type CreateSessionRequest struct {
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	TTLSeconds  int    `json:"ttlSeconds,omitempty"`
}

// Response types

type MeResponse struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
}

type CreateSessionResponse struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type Session struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AccessToken string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
