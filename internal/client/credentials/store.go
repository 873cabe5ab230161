// Package credentials owns the durable bearer-token store. The token is an
// opaque string at this layer: no parsing, no validation. It exists from a
// successful login until explicit logout or a server-signaled expiry.
package credentials

import "context"

// Store is the single source of truth for "am I logged in".
//
// Get returns an empty string when no credential is stored. Clear of an
// absent credential is a no-op. Every Set/Clear is immediately visible to
// subsequent Get calls.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
