package gateway

import (
	"errors"
	"fmt"
)

// Sentinel kinds of a normalized call failure. Callers match these with
// errors.Is and never branch on transport-specific error types.
var (
	// ErrUnavailable: no usable response (dial failure, broken body).
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout: the per-request ceiling elapsed; no status code exists.
	ErrTimeout = errors.New("request timed out")

	// ErrSessionExpired is synthesized on 401 after the credential has
	// been cleared. It is the only error with a global side effect.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotFound: the referenced resource is gone server-side (404 or a
	// not-found detail message).
	ErrNotFound = errors.New("not found")

	// ErrInvalidResponse: 2xx with a payload the client cannot use.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrHTTP: any other non-2xx status.
	ErrHTTP = errors.New("http error")
)

// Error is the single error shape produced by the gateway. Kind is one of
// the sentinels above and is exposed through Unwrap, so both errors.Is
// matching and errors.As field access work.
type Error struct {
	Kind    error
	Message string
	Status  int    // 0 when no response was received
	RawBody string // response body, if any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }
