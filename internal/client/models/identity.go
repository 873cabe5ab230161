// Package models holds the wire types exchanged with the dashboard API.
// Field tags follow the server's JSON conventions: snake_case for auth and
// bookmark payloads, camelCase for dashboard payloads.
package models

import "time"

// Identity is the authenticated user as returned by /auth/me.
type Identity struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResult is the /auth/login response. AccessToken is opaque to the
// client; SessionStore only checks its presence.
type LoginResult struct {
	User        Identity `json:"user"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
}
