// Package common contains shared constants and small helpers used across
// the client layers.
package common

const (
	// CredentialStorageKey is the metadata key under which the sealed
	// bearer token is persisted.
	CredentialStorageKey = "access_token"

	// SettingsStorageKey is the metadata key for persisted user display
	// preferences.
	SettingsStorageKey = "user_settings"

	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries the per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
